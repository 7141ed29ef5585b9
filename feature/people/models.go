package people

import "time"

const (
	StudentTable    = "hub_students"
	SupervisorTable = "hub_supervisors"
)

// Student is an identity record keyed by email (natural key).
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	MatricNo  string    `gorm:"column:matric_no;size:60" json:"matricNo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (Student) TableName() string { return StudentTable }

// Supervisor is an identity record keyed by email (natural key).
type Supervisor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	StaffNo   string    `gorm:"column:staff_no;size:60" json:"staffNo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name.
func (Supervisor) TableName() string { return SupervisorTable }
