package auth

import (
	"context"

	"shopops/backend/internal/entity"
)

type Employee interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.Employee, error)
	UpdateLastSeen(ctx context.Context, employeeID, clientIP, userAgent string) error
}
