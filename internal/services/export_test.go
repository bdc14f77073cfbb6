package services

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func readCSV(t *testing.T, b []byte) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(string(b)))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reparse csv: %v", err)
	}
	return records
}

func TestSerializeCSVHeaderAndRows(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Status"},
		Rows: [][]string{
			{"Training", "planned"},
			{"Survey", "completed"},
		},
	}
	b, err := SerializeCSV(table)
	if err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, b)
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if !reflect.DeepEqual(records[0], table.Headers) {
		t.Errorf("header = %v", records[0])
	}
	if !reflect.DeepEqual(records[2], []string{"Survey", "completed"}) {
		t.Errorf("row = %v", records[2])
	}
}

func TestSerializeCSVQuotesEmbeddedCommas(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Description"},
		Rows:    [][]string{{"Survey", "baseline, midline and endline"}},
	}
	b, err := SerializeCSV(table)
	if err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, b)
	if len(records[1]) != 2 {
		t.Fatalf("comma split the row into %d cells", len(records[1]))
	}
	if records[1][1] != "baseline, midline and endline" {
		t.Errorf("description = %q", records[1][1])
	}
}

func TestSerializeCSVFlattensNewlines(t *testing.T) {
	table := Table{
		Headers: []string{"Description"},
		Rows:    [][]string{{"line one\nline two\r\nline three"}},
	}
	b, err := SerializeCSV(table)
	if err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, b)
	if records[1][0] != "line one line two line three" {
		t.Errorf("cell = %q", records[1][0])
	}
}

func TestSerializeWorkbook(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Budget"},
		Rows:    [][]string{{"Training", "1,500,000"}},
	}
	b, err := SerializeWorkbook(table, "Activities")
	if err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Activities")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], []string{"Name", "Budget"}) {
		t.Errorf("header = %v", rows[0])
	}
	if !reflect.DeepEqual(rows[1], []string{"Training", "1,500,000"}) {
		t.Errorf("row = %v", rows[1])
	}
}
