package checkin

import (
	"context"
	"encoding/json"
	"time"

	"shopops/backend/internal/entity"
	"shopops/backend/internal/repository/postgres/checkin"
	"shopops/backend/internal/service/ipintel"
)

type CheckIn interface {
	GetByWorkDay(ctx context.Context, employeeID, workDay string) (entity.CheckIn, error)
	ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]entity.CheckIn, error)
	Create(ctx context.Context, detail *entity.CheckIn) error
	GetList(ctx context.Context, filter checkin.Filter) ([]checkin.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (checkin.GetDetailByIdResponse, error)
	ListByWorkDay(ctx context.Context, workDay string) ([]checkin.ExportRow, error)
}

type Employee interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.Employee, error)
}

type IPIntel interface {
	Lookup(ctx context.Context, ip string) (ipintel.Info, json.RawMessage, error)
}
