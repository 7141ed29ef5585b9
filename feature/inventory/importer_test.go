package inventory

import (
	"bytes"
	"strings"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `item_id,item_name,brand,category,total_qty,qty_available,is_loanable,requires_approval
7,Drone,DJI,Aerial,,,Yes,No
8,Camera,Canon,Optics,3,3,Yes,Yes
`

func TestParseCSV(t *testing.T) {
	recs, err := ParseCSV(strings.NewReader(sampleCSV))

	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, 7, recs[0].ItemID)
	assert.Equal(t, "Drone", recs[0].ItemName)
	assert.Equal(t, "", recs[0].TotalQty)

	item := recs[0].Normalize()
	assert.Nil(t, item.TotalQty)
	assert.True(t, item.IsLoanable)
	assert.False(t, item.RequiresApproval)

	second := recs[1].Normalize()
	if assert.NotNil(t, second.TotalQty) {
		assert.Equal(t, 3, *second.TotalQty)
	}
	assert.True(t, second.RequiresApproval)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	headers := []string{"item_id", "item_name", "brand", "total_qty", "is_loanable"}
	for i, h := range headers {
		cell := string(rune('A'+i)) + "1"
		f.SetCellValue("Sheet1", cell, h)
	}
	f.SetCellValue("Sheet1", "A2", 7)
	f.SetCellValue("Sheet1", "B2", "Drone")
	f.SetCellValue("Sheet1", "C2", "DJI")
	f.SetCellValue("Sheet1", "D2", "")
	f.SetCellValue("Sheet1", "E2", "Yes")

	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))

	recs, err := ParseXLSX(bytes.NewReader(buf.Bytes()))

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 7, recs[0].ItemID)
	assert.Equal(t, "Drone", recs[0].ItemName)
	assert.Equal(t, "Yes", recs[0].IsLoanable)
	assert.Nil(t, recs[0].Normalize().TotalQty)
}

func TestParseXLSXMissingKeyColumn(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "item_name")
	f.SetCellValue("Sheet1", "A2", "Drone")

	buf := new(bytes.Buffer)
	require.NoError(t, f.Write(buf))

	_, err := ParseXLSX(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_id")
}

func TestParseUpload(t *testing.T) {
	recs, err := ParseUpload("items.CSV", strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = ParseUpload("items.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported import format")
}
