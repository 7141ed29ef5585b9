package intake

import "time"

// SubmissionTable stores one row per accepted form submission.
const SubmissionTable = "hub_form_submissions"

// FormSubmission is the persisted intake record. Payload keeps the raw JSON
// body exactly as received so the forwarded document can be audited later.
type FormSubmission struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Reference    string    `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	StudentID    uint      `gorm:"column:student_id;index;not null" json:"studentId"`
	SupervisorID *uint     `gorm:"column:supervisor_id;index" json:"supervisorId"`
	Purpose      string    `gorm:"size:500" json:"purpose"`
	Payload      string    `gorm:"type:text" json:"-"`
	Forwarded    bool      `gorm:"not null;default:false" json:"forwarded"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (FormSubmission) TableName() string { return SubmissionTable }

// SubmissionRequest is the inbound form shape. Supervisor fields are optional;
// items are informational and validated downstream when a borrow happens.
type SubmissionRequest struct {
	StudentName     string `json:"studentName"`
	StudentEmail    string `json:"studentEmail"`
	MatricNo        string `json:"matricNo"`
	SupervisorName  string `json:"supervisorName"`
	SupervisorEmail string `json:"supervisorEmail"`
	StaffNo         string `json:"staffNo"`
	Purpose         string `json:"purpose"`

	Items []RequestedItem `json:"items"`
}

// RequestedItem is one line of the request form.
type RequestedItem struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}
