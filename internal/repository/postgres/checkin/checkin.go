package checkin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/auth"
	"shopops/backend/internal/entity"
	"shopops/backend/internal/pkg/repository/postgresql"
	"shopops/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"
)

const pgUniqueViolation = "23505"

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByWorkDay fetches the committed check-in for an employee on a local
// calendar day, if one exists.
func (r Repository) GetByWorkDay(ctx context.Context, employeeID, workDay string) (entity.CheckIn, error) {
	var detail entity.CheckIn

	err := r.NewSelect().Model(&detail).
		Where("employee_id = ? AND work_day = ?", employeeID, workDay).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.CheckIn{}, postgres.ErrNotFound
	}
	if err != nil {
		return entity.CheckIn{}, web.NewRequestError(errors.Wrap(err, "selecting check-in by work day"), http.StatusInternalServerError)
	}

	return detail, nil
}

// ListBetween returns an employee's check-ins with occurred_at inside
// [from, to), oldest first. Scopes the weekly exemption lookback.
func (r Repository) ListBetween(ctx context.Context, employeeID string, from, to time.Time) ([]entity.CheckIn, error) {
	var list []entity.CheckIn

	err := r.NewSelect().Model(&list).
		Where("employee_id = ? AND occurred_at >= ? AND occurred_at < ?", employeeID, from, to).
		Order("occurred_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting weekly check-ins"), http.StatusInternalServerError)
	}

	return list, nil
}

// Create inserts the record. A unique-index violation on
// (employee_id, work_day) comes back as postgres.ErrAlreadyCheckedIn so the
// caller can replay the existing record instead of failing.
func (r Repository) Create(ctx context.Context, detail *entity.CheckIn) error {
	_, err := r.NewInsert().Model(detail).Returning("id").Exec(ctx, &detail.ID)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return postgres.ErrAlreadyCheckedIn
		}
		return web.NewRequestError(errors.Wrap(err, "creating check-in"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin, auth.RoleDashboard)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
		WHERE
			e.deleted_at IS NULL
		`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, " ", "", -1)
		search = strings.Replace(search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(c.employee_id ilike '%s' OR e.full_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	// Callers default the date to the business day; the repository has no
	// business clock of its own.
	if filter.Date != nil {
		parsed, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return []GetListResponse{}, 0, web.NewRequestError(errors.Wrap(err, "date parse"), http.StatusBadRequest)
		}
		whereQuery += fmt.Sprintf(" AND c.work_day = '%s'", parsed.Format("2006-01-02"))
	}

	orderQuery := "ORDER BY c.occurred_at desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.employee_id,
			e.full_name,
			c.work_day,
			c.come_time,
			c.late_status,
			c.penalty_percentage,
			c.exemption_applied,
			c.meal_allowance,
			c.is_trusted_network
		FROM checkins as c
		LEFT JOIN employees e ON c.employee_id = e.employee_id
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting check-ins"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		var workDayString string
		var comeTimeBytes []byte

		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.Fullname,
			&workDayString,
			&comeTimeBytes,
			&detail.LateStatus,
			&detail.PenaltyPercentage,
			&detail.ExemptionApplied,
			&detail.MealAllowance,
			&detail.IsTrustedNetwork); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning check-in list"), http.StatusInternalServerError)
		}

		workDay, err := date.ParseDate(workDayString)
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusInternalServerError)
		}
		detail.WorkDay = &workDay

		comeTime, err := time.Parse("15:04:05", string(comeTimeBytes))
		if err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "converting come_time to time.Time"), http.StatusInternalServerError)
		}
		detail.ComeTime = &comeTime

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(c.id)
		FROM checkins as c
		LEFT JOIN employees e ON c.employee_id = e.employee_id
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning check-in count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.employee_id,
			e.full_name,
			c.work_day,
			c.come_time,
			c.late_status,
			c.penalty_percentage,
			c.exemption_applied,
			c.meal_allowance,
			c.client_ip,
			c.user_agent,
			c.network_info,
			c.is_trusted_network
		FROM checkins as c
		LEFT JOIN employees e ON c.employee_id = e.employee_id
		WHERE c.id = %d
	`, id)

	var detail GetDetailByIdResponse
	var workDayString string
	var comeTimeBytes []byte

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.EmployeeID,
		&detail.Fullname,
		&workDayString,
		&comeTimeBytes,
		&detail.LateStatus,
		&detail.PenaltyPercentage,
		&detail.ExemptionApplied,
		&detail.MealAllowance,
		&detail.ClientIP,
		&detail.UserAgent,
		&detail.NetworkInfo,
		&detail.IsTrustedNetwork,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting check-in detail"), http.StatusInternalServerError)
	}

	workDay, err := date.ParseDate(workDayString)
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "converting work_day to date.Date"), http.StatusInternalServerError)
	}
	detail.WorkDay = &workDay

	comeTime, err := time.Parse("15:04:05", string(comeTimeBytes))
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "converting come_time to time.Time"), http.StatusInternalServerError)
	}
	detail.ComeTime = &comeTime

	return detail, nil
}

// ListByWorkDay collects one day's check-ins for the Excel export.
func (r Repository) ListByWorkDay(ctx context.Context, workDay string) ([]ExportRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT
			c.employee_id,
			COALESCE(e.full_name, ''),
			c.come_time,
			c.late_status,
			c.penalty_percentage,
			c.exemption_applied,
			c.meal_allowance,
			c.is_trusted_network
		FROM checkins as c
		LEFT JOIN employees e ON c.employee_id = e.employee_id
		WHERE c.work_day = $1
		ORDER BY c.occurred_at
	`

	rows, err := r.QueryContext(ctx, query, workDay)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting check-ins for export"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []ExportRow

	for rows.Next() {
		var row ExportRow
		var comeTimeBytes []byte
		var trusted *bool

		if err = rows.Scan(
			&row.EmployeeID,
			&row.Fullname,
			&comeTimeBytes,
			&row.LateStatus,
			&row.Penalty,
			&row.Exempted,
			&row.MealAllowance,
			&trusted); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning export row"), http.StatusInternalServerError)
		}

		row.ComeTime = string(comeTimeBytes)
		switch {
		case trusted == nil:
			row.TrustedWifi = "unknown"
		case *trusted:
			row.TrustedWifi = "yes"
		default:
			row.TrustedWifi = "no"
		}

		list = append(list, row)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "iterating export rows"), http.StatusInternalServerError)
	}

	return list, nil
}
