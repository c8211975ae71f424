package checkin

import (
	"encoding/json"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Date   *string
}

type CreateRequest struct {
	EmployeeID *string `json:"employeeId" form:"employeeId"`
}

type GetListResponse struct {
	ID                int        `json:"id"`
	EmployeeID        *string    `json:"employee_id"`
	Fullname          *string    `json:"full_name"`
	WorkDay           *date.Date `json:"work_day"`
	ComeTime          *time.Time `json:"come_time,omitempty"`
	LateStatus        *string    `json:"late_status"`
	PenaltyPercentage *int       `json:"penalty_percentage"`
	ExemptionApplied  *bool      `json:"exemption_applied"`
	MealAllowance     *int       `json:"meal_allowance"`
	IsTrustedNetwork  *bool      `json:"is_trusted_network"`
}

func (r *GetListResponse) MarshalJSON() ([]byte, error) {
	type Alias GetListResponse
	aux := &struct {
		ComeTime string `json:"come_time,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(r),
	}

	if r.ComeTime != nil {
		aux.ComeTime = r.ComeTime.Format("15:04")
	}

	return json.Marshal(aux)
}

type GetDetailByIdResponse struct {
	ID                int             `json:"id"`
	EmployeeID        *string         `json:"employee_id"`
	Fullname          *string         `json:"full_name"`
	WorkDay           *date.Date      `json:"work_day"`
	ComeTime          *time.Time      `json:"come_time,omitempty"`
	LateStatus        *string         `json:"late_status"`
	PenaltyPercentage *int            `json:"penalty_percentage"`
	ExemptionApplied  *bool           `json:"exemption_applied"`
	MealAllowance     *int            `json:"meal_allowance"`
	ClientIP          *string         `json:"client_ip"`
	UserAgent         *string         `json:"user_agent"`
	NetworkInfo       json.RawMessage `json:"network_info,omitempty"`
	IsTrustedNetwork  *bool           `json:"is_trusted_network"`
}

type ExportRow struct {
	EmployeeID    string
	Fullname      string
	ComeTime      string
	LateStatus    string
	Penalty       int
	Exempted      bool
	MealAllowance int
	TrustedWifi   string
}
