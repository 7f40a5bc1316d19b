package converter

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet WriteXLSX fills.
const SheetName = "Transactions"

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (want csv or xlsx)", s)
}

// FormatFor guesses a format from an output path, defaulting to CSV.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Write encodes txs to w in the given format.
func Write(w io.Writer, f Format, txs []Transaction) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, txs)
	case FormatXLSX:
		return WriteXLSX(w, txs)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// WriteCSV writes Header followed by one row per transaction.
func WriteCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range txs {
		if err := cw.Write(t.Row()); err != nil {
			return fmt.Errorf("write row %s: %w", t.TranNo, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as WriteCSV as an Excel workbook. Debit and
// credit are stored as numbers when they parse.
func WriteXLSX(w io.Writer, txs []Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, t := range txs {
		row := make([]interface{}, 0, len(Header))
		for col, v := range t.Row() {
			row = append(row, cellValue(col, v))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", t.TranNo, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Debit and credit columns.
const (
	debitCol  = 7
	creditCol = 8
)

func cellValue(col int, v string) interface{} {
	if col != debitCol && col != creditCol {
		return v
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	return n
}
