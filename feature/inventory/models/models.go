package models

import (
	"time"

	"loanhub/core/utils"
)

// ItemTable is the inventory table inherited from the original hub schema.
const ItemTable = "hub_inv"

// Item is a loanable equipment item. Quantity columns are nullable on purpose:
// spreadsheet imports distinguish "absent" from zero.
type Item struct {
	ItemID   int    `gorm:"column:item_id;primaryKey" json:"itemId"`
	ItemName string `gorm:"column:item_name;size:200;not null" json:"itemName"`
	Brand    string `gorm:"column:brand;size:120" json:"brand"`
	Model    string `gorm:"column:model;size:120" json:"model"`
	Size     string `gorm:"column:size;size:60" json:"size"`
	Category string `gorm:"column:category;size:120" json:"category"`

	TotalQty     *int `gorm:"column:total_qty" json:"totalQty"`
	QtyAvailable *int `gorm:"column:qty_available" json:"qtyAvailable"`
	QtyReserved  *int `gorm:"column:qty_reserved" json:"qtyReserved"`
	QtyBorrowed  *int `gorm:"column:qty_borrowed" json:"qtyBorrowed"`

	IsLoanable       bool `gorm:"column:is_loanable" json:"isLoanable"`
	RequiresApproval bool `gorm:"column:requires_approval" json:"requiresApproval"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (Item) TableName() string { return ItemTable }

// ImportRecord is one externally sourced row, keyed by the natural item
// identifier. Numeric and boolean-like fields arrive as text and are
// normalized by Normalize.
type ImportRecord struct {
	ItemID           int    `json:"itemId" csv:"item_id"`
	ItemName         string `json:"itemName" csv:"item_name"`
	Brand            string `json:"brand" csv:"brand"`
	Model            string `json:"model" csv:"model"`
	Size             string `json:"size" csv:"size"`
	Category         string `json:"category" csv:"category"`
	TotalQty         string `json:"totalQty" csv:"total_qty"`
	QtyAvailable     string `json:"qtyAvailable" csv:"qty_available"`
	QtyReserved      string `json:"qtyReserved" csv:"qty_reserved"`
	QtyBorrowed      string `json:"qtyBorrowed" csv:"qty_borrowed"`
	IsLoanable       string `json:"isLoanable" csv:"is_loanable"`
	RequiresApproval string `json:"requiresApproval" csv:"requires_approval"`
}

// Normalize converts the textual record into a storable item. Empty numeric
// strings become NULL, the "Yes"/other convention becomes a bool.
func (r ImportRecord) Normalize() Item {
	return Item{
		ItemID:           r.ItemID,
		ItemName:         r.ItemName,
		Brand:            r.Brand,
		Model:            r.Model,
		Size:             r.Size,
		Category:         r.Category,
		TotalQty:         utils.ToNullInt(r.TotalQty),
		QtyAvailable:     utils.ToNullInt(r.QtyAvailable),
		QtyReserved:      utils.ToNullInt(r.QtyReserved),
		QtyBorrowed:      utils.ToNullInt(r.QtyBorrowed),
		IsLoanable:       utils.ToYesNo(r.IsLoanable),
		RequiresApproval: utils.ToYesNo(r.RequiresApproval),
	}
}
