package student

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("student not found")
	ErrAlreadyExists = errors.New("a student with this registration number already exists")
	ErrBadCredential = errors.New("invalid registration number or password")
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

// Student owns its loan records; the loans table references students.id.
// Password is an opaque credential compared verbatim (hardening is out of
// scope for this system).
type Student struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	RegNo     string    `gorm:"column:reg_no;size:16;uniqueIndex:ux_students_reg_no" json:"reg_no"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255" json:"email"`
	Password  string    `gorm:"column:password;size:255" json:"-"`
	Role      Role      `gorm:"column:role;size:16;default:'student'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string { return "students" }
