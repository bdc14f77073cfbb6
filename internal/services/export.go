package services

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportResult hands the caller a serialized blob plus the filename and MIME
// type to use at the download sink.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SerializeCSV renders the table as RFC 4180 CSV. Embedded newlines are
// flattened to a single space first so each record stays on one display line
// for spreadsheet consumers; commas and quotes are handled by quoting.
func SerializeCSV(t Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(flattenNewlines(t.Headers)); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(flattenNewlines(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SerializeWorkbook renders the table as a single-sheet XLSX workbook.
func SerializeWorkbook(t Table, sheetName string) ([]byte, error) {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		addr, err := excelize.JoinCellName("A", i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, addr, &cells); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flattenNewlines(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "\r\n", " ")
		c = strings.ReplaceAll(c, "\n", " ")
		out[i] = c
	}
	return out
}
