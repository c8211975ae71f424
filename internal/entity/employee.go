package entity

import (
	"github.com/uptrace/bun"
)

type Employee struct {
	bun.BaseModel `bun:"table:employees"`

	BasicEntity
	EmployeeID *string `json:"employee_id"   bun:"employee_id"`
	FullName   *string `json:"full_name"     bun:"full_name"`
	Password   *string `json:"-"             bun:"password"`
	Role       *string `json:"role"          bun:"role"`
	Phone      *string `json:"phone"         bun:"phone"`
	Email      *string `json:"email"         bun:"email"`

	// Last-seen provenance, written by sign-in, never by check-in.
	LastIP        *string `json:"last_ip"         bun:"last_ip"`
	LastUserAgent *string `json:"last_user_agent" bun:"last_user_agent"`
}
