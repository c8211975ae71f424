package employee

import (
	"context"

	"shopops/backend/internal/entity"
	"shopops/backend/internal/repository/postgres/employee"
)

type Employee interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.Employee, error)
	GetList(ctx context.Context, filter employee.Filter) ([]employee.GetListResponse, int, error)
	Create(ctx context.Context, request employee.CreateRequest) (employee.CreateResponse, error)
	UpdateColumns(ctx context.Context, request employee.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	ListForBadges(ctx context.Context) ([]employee.BadgeRow, error)
}
