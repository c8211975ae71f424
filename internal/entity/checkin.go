package entity

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

// CheckIn is one committed attendance record. Immutable once created: no
// handler updates late_status or penalty_percentage afterwards.
type CheckIn struct {
	bun.BaseModel `bun:"table:checkins"`

	ID         int       `json:"id" bun:"id,pk,autoincrement"`
	EmployeeID string    `json:"employee_id" bun:"employee_id"`
	WorkDay    string    `json:"work_day" bun:"work_day"`
	OccurredAt time.Time `json:"occurred_at" bun:"occurred_at"`

	// ComeTime is the local business wall clock of the arrival ("15:04:05").
	// The weekly exemption lookback reads this value directly.
	ComeTime string `json:"come_time" bun:"come_time"`

	LateStatus        string `json:"late_status" bun:"late_status"`
	PenaltyPercentage int    `json:"penalty_percentage" bun:"penalty_percentage"`
	ExemptionApplied  bool   `json:"exemption_applied" bun:"exemption_applied"`
	MealAllowance     int    `json:"meal_allowance" bun:"meal_allowance"`

	ClientIP         string          `json:"client_ip" bun:"client_ip"`
	UserAgent        string          `json:"user_agent" bun:"user_agent"`
	NetworkInfo      json.RawMessage `json:"network_info,omitempty" bun:"network_info,type:jsonb"`
	IsTrustedNetwork *bool           `json:"is_trusted_network" bun:"is_trusted_network"`

	CreatedAt time.Time `json:"created_at" bun:"created_at,nullzero,default:now()"`
}
