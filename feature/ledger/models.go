package ledger

import "time"

const (
	// RequestTable holds one row per borrow request.
	RequestTable = "hub_borrow_requests"
	// BorrowedTable tracks returned quantity against each request.
	BorrowedTable = "hub_borrowed_items"
)

// Borrow request lifecycle.
const (
	StatusPending  = "Pending"
	StatusReturned = "Returned"
)

// BorrowRequest is the audit record appended by every successful borrow.
type BorrowRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentID    string    `gorm:"column:student_id;size:60;index;not null" json:"studentId"`
	ItemID       int       `gorm:"column:item_id;index;not null" json:"itemId"`
	QtyRequested int       `gorm:"column:qty_requested;not null" json:"qtyRequested"`
	Status       string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (BorrowRequest) TableName() string { return RequestTable }

// BorrowedItem is the per-request ledger entry. QtyReturned is monotonically
// non-decreasing and never exceeds QtyBorrowed.
type BorrowedItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequestID   uint      `gorm:"column:request_id;index;not null" json:"requestId"`
	QtyBorrowed int       `gorm:"column:qty_borrowed;not null" json:"qtyBorrowed"`
	QtyReturned int       `gorm:"column:qty_returned;not null;default:0" json:"qtyReturned"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (BorrowedItem) TableName() string { return BorrowedTable }
