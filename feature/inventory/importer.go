package inventory

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"loanhub/feature/inventory/models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
)

// ParseCSV reads import records from a CSV stream. The header row must carry
// the column names of the hub_inv schema (item_id, item_name, ...).
func ParseCSV(r io.Reader) ([]models.ImportRecord, error) {
	var recs []models.ImportRecord
	if err := gocsv.Unmarshal(r, &recs); err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return recs, nil
}

// ParseXLSX reads import records from the active sheet of an XLSX workbook.
// The first row is the header and is matched against the same column names as
// the CSV format; unknown columns are ignored.
func ParseXLSX(r io.Reader) ([]models.ImportRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows := f.GetRows(sheet)
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["item_id"]; !ok {
		return nil, fmt.Errorf("sheet %s has no item_id column", sheet)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	recs := make([]models.ImportRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, _ := strconv.Atoi(strings.TrimSpace(cell(row, "item_id")))
		recs = append(recs, models.ImportRecord{
			ItemID:           id,
			ItemName:         cell(row, "item_name"),
			Brand:            cell(row, "brand"),
			Model:            cell(row, "model"),
			Size:             cell(row, "size"),
			Category:         cell(row, "category"),
			TotalQty:         cell(row, "total_qty"),
			QtyAvailable:     cell(row, "qty_available"),
			QtyReserved:      cell(row, "qty_reserved"),
			QtyBorrowed:      cell(row, "qty_borrowed"),
			IsLoanable:       cell(row, "is_loanable"),
			RequiresApproval: cell(row, "requires_approval"),
		})
	}
	return recs, nil
}

// ParseUpload picks the parser from the file name extension.
func ParseUpload(name string, r io.Reader) ([]models.ImportRecord, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".csv"):
		return ParseCSV(r)
	case strings.HasSuffix(strings.ToLower(name), ".xlsx"):
		return ParseXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported import format: %s", name)
	}
}
