package router

import (
	"time"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/attendance"
	"shopops/backend/internal/auth"
	"shopops/backend/internal/middleware"
	"shopops/backend/internal/pkg/config"
	"shopops/backend/internal/pkg/repository/postgresql"
	"shopops/backend/internal/service/ipintel"

	"github.com/redis/go-redis/v9"

	checkin_repo "shopops/backend/internal/repository/postgres/checkin"
	employee_repo "shopops/backend/internal/repository/postgres/employee"

	auth_controller "shopops/backend/internal/controller/http/v1/auth"
	checkin_controller "shopops/backend/internal/controller/http/v1/checkin"
	employee_controller "shopops/backend/internal/controller/http/v1/employee"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	auth *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		auth,
		cfg,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	employeePostgres := employee_repo.NewRepository(r.postgresDB)
	checkinPostgres := checkin_repo.NewRepository(r.postgresDB)

	// - network intelligence
	ipClient := ipintel.NewClient(
		r.cfg.IPIntelBaseUrl,
		r.cfg.IPIntelToken,
		time.Duration(r.cfg.IPIntelTimeoutSecs)*time.Second,
		r.redisDB,
		time.Duration(r.cfg.IPIntelCacheTTLMins)*time.Minute,
	)
	trust := ipintel.TrustRule{
		ISPNames: r.cfg.TrustedISPNames,
		ASNs:     r.cfg.TrustedASNs,
	}

	// controller
	authController := auth_controller.NewController(employeePostgres, r.auth)
	employeeController := employee_controller.NewController(employeePostgres)
	checkinController := checkin_controller.NewController(
		checkinPostgres,
		employeePostgres,
		ipClient,
		trust,
		attendance.Location(r.cfg.TimezoneOffsetHours),
		r.cfg.MealAllowanceAmount,
	)

	// #checkin (badge scanners call this without a token)
	r.Post("/checkins", checkinController.Create)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #checkin reporting
	r.Get("/api/v1/checkin/list", checkinController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/checkin/export", checkinController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/checkin/:id", checkinController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/qrcode", employeeController.GetQrCodeByEmployeeId, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/qrcodelist", employeeController.GetQrCodeList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/employee/create", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/employee/:id", employeeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.cfg.ServerPort)
}
