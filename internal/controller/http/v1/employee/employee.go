package employee

import (
	"net/http"
	"reflect"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/repository/postgres"
	"shopops/backend/internal/repository/postgres/employee"
	"shopops/backend/internal/service"

	"github.com/pkg/errors"
)

type Controller struct {
	employee Employee
}

func NewController(employeeRepo Employee) *Controller {
	return &Controller{employee: employeeRepo}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter employee.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.employee.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request employee.CreateRequest
	if err := c.BindFunc(&request, "EmployeeID", "FullName", "Password", "Role"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.employee.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request employee.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.employee.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	if err := uc.employee.Delete(c.Ctx, id); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// GetQrCodeByEmployeeId streams the check-in badge QR for one employee.
func (uc Controller) GetQrCodeByEmployeeId(c *web.Context) error {
	employeeID, ok := c.GetQueryFunc(reflect.String, "employee_id").(*string)
	if !ok || employeeID == nil || *employeeID == "" {
		return c.RespondError(web.NewRequestError(errors.New("employee_id parameter is required"), http.StatusBadRequest))
	}

	if _, err := uc.employee.GetByEmployeeID(c.Ctx, *employeeID); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return c.RespondError(web.NewRequestError(errors.New("employee not found"), http.StatusNotFound))
		}
		return c.RespondError(err)
	}

	path, err := service.BadgeQR(*employeeID)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating badge qr"), http.StatusInternalServerError))
	}

	c.Header("Content-Type", "image/png")
	c.File(path)
	return nil
}

// GetQrCodeList streams a badge-sheet PDF covering every active employee.
func (uc Controller) GetQrCodeList(c *web.Context) error {
	rows, err := uc.employee.ListForBadges(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	path, err := service.BadgeSheet(rows)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating badge sheet"), http.StatusInternalServerError))
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\"badge_sheet.pdf\"")
	c.File(path)
	return nil
}
