// Package converter turns fixed-width ledger exports into spreadsheet rows.
package converter

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// lookahead is how many lines after a record line may carry its details.
const lookahead = 4

var (
	recordRe = regexp.MustCompile(`\|\s*(\d+)\|\s*(\d{2}/\d{2}/\d{4})\s*\|\s*(\w+)\s*\|\s*(\w+)\s*\|\s*(\d+)\s*\|\s*(\d+)\s*\|\s*(\d{2}/\d{2}/\d{4})\s*\|\s*([\d,]+\.?\d*)\s*\|\s*([\d,]+\.?\d*)\s*\|`)
	nameRe   = regexp.MustCompile(`Name\s*:\s*([^|]+?)\s+Sr/Ag/Pol No\s*:\s*([^|]+?)\s*\|`)
	descRe   = regexp.MustCompile(`\|([A-Z][^|]{10,}?)\s*\|`)
	bankRe   = regexp.MustCompile(`for\s+(NEFT-[\w-]+)\s+([\w\s.-]+)`)
)

// Transaction is one ledger entry.
type Transaction struct {
	TranNo      string
	TranDate    string
	Dept        string
	BookCode    string
	VoucherNo   string
	ChqNo       string
	VoucherDate string
	Debit       string
	Credit      string
	Name        string
	SrAgPolNo   string
	Description string
	BankDetails string
}

// Header is the column row written before any transactions.
var Header = []string{
	"Tran No",
	"Tran Date",
	"Dept",
	"Book Code",
	"Voucher No",
	"Chq No",
	"Voucher Date",
	"Debit",
	"Credit",
	"Name",
	"Sr/Ag/Pol No",
	"Description",
	"Bank Details",
}

// Row returns the transaction's fields in Header order.
func (t Transaction) Row() []string {
	return []string{
		t.TranNo, t.TranDate, t.Dept, t.BookCode, t.VoucherNo, t.ChqNo,
		t.VoucherDate, t.Debit, t.Credit, t.Name, t.SrAgPolNo,
		t.Description, t.BankDetails,
	}
}

// Parse scans r for transaction records. Lines that do not match are
// skipped, as are records with no name line. Only read errors are returned.
func Parse(r io.Reader) ([]Transaction, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var out []Transaction
	for i, line := range lines {
		m := recordRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		t := Transaction{
			TranNo:      m[1],
			TranDate:    m[2],
			Dept:        m[3],
			BookCode:    m[4],
			VoucherNo:   m[5],
			ChqNo:       m[6],
			VoucherDate: m[7],
			Debit:       strings.ReplaceAll(m[8], ",", ""),
			Credit:      strings.ReplaceAll(m[9], ",", ""),
		}
		end := min(i+lookahead+1, len(lines))
		for _, cur := range lines[i:end] {
			details(&t, cur)
		}
		if t.Name == "" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// details fills whichever of name, description and bank details are still
// empty from one line of the record's window.
func details(t *Transaction, line string) {
	if t.Name == "" {
		if m := nameRe.FindStringSubmatch(line); m != nil {
			t.Name = strings.TrimSpace(m[1])
			t.SrAgPolNo = strings.TrimSpace(m[2])
		}
	}
	if t.Description == "" && t.Name != "" &&
		strings.Contains(line, "|") && !strings.Contains(line, "Name :") {
		if m := descRe.FindStringSubmatch(line); m != nil {
			t.Description = strings.TrimSpace(m[1])
		}
	}
	if t.BankDetails == "" {
		if m := bankRe.FindStringSubmatch(line); m != nil {
			t.BankDetails = m[1] + " " + strings.TrimSpace(m[2])
		}
	}
}
