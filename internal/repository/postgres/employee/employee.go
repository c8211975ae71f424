package employee

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

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmployeeID looks up the directory record. Returns postgres.ErrNotFound
// for unknown ids so unauthenticated callers can map it themselves.
func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().Model(&detail).
		Where("employee_id = ? AND deleted_at IS NULL", employeeID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, postgres.ErrNotFound
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
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
		(e.employee_id ilike '%s' OR e.full_name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY e.created_at desc"

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
			e.id,
			e.employee_id,
			e.full_name,
			e.role,
			e.phone,
			e.email
		FROM employees e
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.FullName,
			&detail.Role,
			&detail.Phone,
			&detail.Email); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(e.id)
		FROM employees e
		%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning employee count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "FullName", "Password", "Role"); err != nil {
		return CreateResponse{}, err
	}

	role := strings.ToUpper(*request.Role)
	if role != auth.RoleEmployee && role != auth.RoleAdmin && role != auth.RoleDashboard {
		return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, ADMIN or DASHBOARD"), http.StatusBadRequest)
	}

	taken := false
	if err := r.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT id FROM employees WHERE employee_id = $1 AND deleted_at IS NULL)",
		*request.EmployeeID).Scan(&taken); err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "employee_id check"), http.StatusInternalServerError)
	}
	if taken {
		return CreateResponse{}, web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashed := string(hash)

	var response CreateResponse

	response.EmployeeID = request.EmployeeID
	response.FullName = request.FullName
	response.Password = &hashed
	response.Role = &role
	response.Phone = request.Phone
	response.Email = request.Email
	response.CreatedAt = time.Now()
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating employee"), http.StatusInternalServerError)
	}

	response.Password = nil

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("employees").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.EmployeeID != nil {
		q.Set("employee_id = ?", request.EmployeeID)
	}
	if request.FullName != nil {
		q.Set("full_name = ?", request.FullName)
	}
	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleEmployee && role != auth.RoleAdmin && role != auth.RoleDashboard {
			return web.NewRequestError(errors.New("incorrect role. role should be EMPLOYEE, ADMIN or DASHBOARD"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating employee"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "employees", id)
}

// UpdateLastSeen records the IP/user-agent seen at sign-in. This is the only
// flow that touches these legacy columns.
func (r Repository) UpdateLastSeen(ctx context.Context, employeeID, clientIP, userAgent string) error {
	q := r.NewUpdate().Table("employees").Where("deleted_at IS NULL AND employee_id = ?", employeeID)
	q.Set("last_ip = ?", clientIP)
	q.Set("last_user_agent = ?", userAgent)

	_, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating employee last seen"), http.StatusInternalServerError)
	}

	return nil
}

// ListForBadges returns every active employee for the badge-sheet PDF.
func (r Repository) ListForBadges(ctx context.Context) ([]BadgeRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT employee_id, COALESCE(full_name, '')
		FROM employees
		WHERE deleted_at IS NULL AND role = 'EMPLOYEE'
		ORDER BY employee_id
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting employees for badges"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []BadgeRow

	for rows.Next() {
		var row BadgeRow
		if err = rows.Scan(&row.EmployeeID, &row.FullName); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning badge row"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "iterating badge rows"), http.StatusInternalServerError)
	}

	return list, nil
}
