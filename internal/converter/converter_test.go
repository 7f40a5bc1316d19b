package converter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const ledger = `LEDGER REPORT FOR THE PERIOD 01/04/2024 TO 30/04/2024
+------+-----------+-----+-----+------+---+-----------+----------+----------+
|  101|01/04/2024 | ACC | BK1 | 5001 | 0 |02/04/2024 | 1,250.50 | 0.00 |
| Name : John Smith  Sr/Ag/Pol No : P12345 |
|PREMIUM PAYMENT RECEIVED    |
| Paid for NEFT-ABC123-XY HDFC Bank Ltd. |
+------+-----------+-----+-----+------+---+-----------+----------+----------+
|  102|03/04/2024 | ACC | BK2 | 5002 | 77 |03/04/2024 | 0.00 | 12,000 |
| no name on this one |
+------+-----------+-----+-----+------+---+-----------+----------+----------+
+------+-----------+-----+-----+------+---+-----------+----------+----------+
+------+-----------+-----+-----+------+---+-----------+----------+----------+
|  103|05/04/2024 | OPS | BK1 | 5003 | 0 |06/04/2024 | 99.99 | 0.00 |
| Name : Jane Roe Sr/Ag/Pol No : AG-77 |
`

func TestParse(t *testing.T) {
	txs, err := Parse(strings.NewReader(ledger))
	require.NoError(t, err)
	require.Len(t, txs, 2, "records without a name are skipped")

	assert.Equal(t, Transaction{
		TranNo:      "101",
		TranDate:    "01/04/2024",
		Dept:        "ACC",
		BookCode:    "BK1",
		VoucherNo:   "5001",
		ChqNo:       "0",
		VoucherDate: "02/04/2024",
		Debit:       "1250.50",
		Credit:      "0.00",
		Name:        "John Smith",
		SrAgPolNo:   "P12345",
		Description: "PREMIUM PAYMENT RECEIVED",
		BankDetails: "NEFT-ABC123-XY HDFC Bank Ltd.",
	}, txs[0])

	assert.Equal(t, "103", txs[1].TranNo)
	assert.Equal(t, "Jane Roe", txs[1].Name)
	assert.Equal(t, "AG-77", txs[1].SrAgPolNo)
	assert.Empty(t, txs[1].Description)
	assert.Empty(t, txs[1].BankDetails)
}

func TestParseDetailsOutsideWindowIgnored(t *testing.T) {
	in := "|  1|01/01/2024 | A | B | 1 | 1 |01/01/2024 | 1 | 2 |\n" +
		"\n\n\n\n" +
		"| Name : Too Late Sr/Ag/Pol No : X |\n"
	txs, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestParseCRLF(t *testing.T) {
	in := strings.ReplaceAll(ledger, "\n", "\r\n")
	txs, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "John Smith", txs[0].Name)
}

func TestParseEmpty(t *testing.T) {
	txs, err := Parse(strings.NewReader("nothing to see here\n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseReadError(t *testing.T) {
	_, err := Parse(failingReader{})
	assert.ErrorContains(t, err, "disk on fire")
}

func TestWriteCSV(t *testing.T) {
	txs, err := Parse(strings.NewReader(ledger))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, txs[0].Row(), rows[1])
	assert.Len(t, rows[1], 13)
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Transaction{{TranNo: "1", Name: "Smith, John"}}))
	assert.Contains(t, buf.String(), `"Smith, John"`)
}

func TestWriteXLSX(t *testing.T) {
	txs, err := Parse(strings.NewReader(ledger))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, txs))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "John Smith", rows[1][9])

	typ, err := f.GetCellType(SheetName, "H2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)

	assert.Equal(t, FormatXLSX, FormatFor("out/ledger.XLSX"))
	assert.Equal(t, FormatCSV, FormatFor("ledger.csv"))
	assert.Equal(t, FormatCSV, FormatFor("ledger"))

	assert.Error(t, Write(&bytes.Buffer{}, Format("pdf"), nil))
}
