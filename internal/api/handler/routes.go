package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CustomerReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomerReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/customers/export",
			Method:      http.MethodGet,
			Handler:     ExportCustomerReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/customers/:key",
			Method:      http.MethodGet,
			Handler:     GetCustomerReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ProductReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/products",
			Method:      http.MethodGet,
			Handler:     ListProductReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/products/export",
			Method:      http.MethodGet,
			Handler:     ExportProductReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/products/:key",
			Method:      http.MethodGet,
			Handler:     GetProductReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ReportAdmin(syncService ReportSyncStatuser) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshReports(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/reports/status",
			Method:      http.MethodGet,
			Handler:     GetReportSyncStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
