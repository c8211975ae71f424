package auth

import (
	"net/http"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/auth"
	"shopops/backend/internal/repository/postgres"
	"shopops/backend/internal/repository/postgres/employee"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	employee Employee
	auth     *auth.Auth
}

func NewController(employeeRepo Employee, a *auth.Auth) *Controller {
	return &Controller{employee: employeeRepo, auth: a}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data employee.SignInRequest

	if err := c.BindFunc(&data, "EmployeeID", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.employee.GetByEmployeeID(c.Ctx, data.EmployeeID)
	if errors.Is(err, postgres.ErrNotFound) {
		return c.RespondError(web.NewRequestError(errors.New("employee not found"), http.StatusNotFound))
	}
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee has no password set"), http.StatusBadRequest))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect password"), http.StatusBadRequest))
	}

	if detail.Role == nil {
		return c.RespondError(web.NewRequestError(errors.New("employee has no role assigned"), http.StatusBadRequest))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(detail.ID, *detail.Role)
	if err != nil {
		return c.RespondError(err)
	}

	// Last-seen provenance lives on the employee record and is only ever
	// written here, never by the check-in flow.
	if err = uc.employee.UpdateLastSeen(c.Ctx, data.EmployeeID, c.ClientIP(), c.Request.UserAgent()); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data employee.RefreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateToken(data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(claims.UserId, claims.Role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}
