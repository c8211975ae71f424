package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/auth"
	"shopops/backend/internal/entity"
	"shopops/backend/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	detail entity.Employee
	err    error

	lastSeenIP string
	lastSeenUA string
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, _ string) (entity.Employee, error) {
	if f.err != nil {
		return entity.Employee{}, f.err
	}
	return f.detail, nil
}

func (f *fakeEmployeeRepo) UpdateLastSeen(_ context.Context, _, clientIP, userAgent string) error {
	f.lastSeenIP = clientIP
	f.lastSeenUA = userAgent
	return nil
}

func employeeWith(password string, role *string) entity.Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	hashed := string(hash)
	id := "EMP-1"

	detail := entity.Employee{EmployeeID: &id, Password: &hashed, Role: role}
	detail.ID = 1
	return detail
}

func doSignIn(t *testing.T, uc *Controller, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sign-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "admin-panel/1.0")
	ginCtx.Request = req

	err := uc.SignIn(&web.Context{Context: ginCtx, Ctx: context.Background()})
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSignIn(t *testing.T) {
	role := auth.RoleAdmin
	repo := &fakeEmployeeRepo{detail: employeeWith("secret", &role)}
	uc := NewController(repo, auth.New("test-key"))

	w, resp := doSignIn(t, uc, `{"employee_id":"EMP-1","password":"secret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])
	assert.Equal(t, "admin-panel/1.0", repo.lastSeenUA)
	assert.NotEmpty(t, repo.lastSeenIP)
}

func TestSignInUnknownEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{err: postgres.ErrNotFound}
	uc := NewController(repo, auth.New("test-key"))

	w, _ := doSignIn(t, uc, `{"employee_id":"EMP-404","password":"secret"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	role := auth.RoleAdmin
	repo := &fakeEmployeeRepo{detail: employeeWith("secret", &role)}
	uc := NewController(repo, auth.New("test-key"))

	w, _ := doSignIn(t, uc, `{"employee_id":"EMP-1","password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.lastSeenUA)
}

func TestSignInNilRole(t *testing.T) {
	// role is a nullable column; a row without one must fail cleanly, not
	// panic during token generation.
	repo := &fakeEmployeeRepo{detail: employeeWith("secret", nil)}
	uc := NewController(repo, auth.New("test-key"))

	w, resp := doSignIn(t, uc, `{"employee_id":"EMP-1","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "no role")
}
