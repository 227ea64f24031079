package app

import (
	"net/http"

	"go-hris-backoffice/internal/attendance"
	"go-hris-backoffice/internal/employee"
	"go-hris-backoffice/internal/hiring"
	"go-hris-backoffice/internal/leave"
	"go-hris-backoffice/internal/messaging/kafka"
	"go-hris-backoffice/internal/middleware"
	"go-hris-backoffice/internal/shared/counter"
	"go-hris-backoffice/internal/tenant"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// buildStore picks the backend for one collection.
func buildStore[T tenantstore.Record](cfg Config, infra Infra, counters counter.Repository, col tenantstore.Collection, logger *zap.Logger) tenantstore.Store[T] {
	switch cfg.StoreBackend {
	case StorePostgres:
		return tenantstore.NewGormStore[T](infra.GormDB, counters, col, logger)
	case StoreRedis:
		return tenantstore.NewRedisStore[T](infra.Redis, col, tenantstore.WithRedisLogger(logger))
	default:
		return tenantstore.NewMemoryStore[T](col)
	}
}

func registerModules(
	router *gin.Engine,
	cfg Config,
	infra Infra,
	publisher kafka.Publisher,
	logger *zap.Logger,
) {
	var counters counter.Repository
	if infra.GormDB != nil {
		counters = counter.NewRepository(infra.GormDB)
	}

	// --- Stores ---
	tenantStore := buildStore[tenant.Tenant](cfg, infra, counters, tenant.Collection, logger)
	employeeStore := buildStore[employee.Employee](cfg, infra, counters, employee.Collection, logger)
	leaveStore := buildStore[leave.Leave](cfg, infra, counters, leave.Collection, logger)
	shiftStore := buildStore[attendance.Shift](cfg, infra, counters, attendance.ShiftCollection, logger)
	timesheetStore := buildStore[attendance.Timesheet](cfg, infra, counters, attendance.TimesheetCollection, logger)
	hiringStores := hiring.Stores{
		Postings:     buildStore[hiring.Posting](cfg, infra, counters, hiring.PostingCollection, logger),
		Candidates:   buildStore[hiring.Candidate](cfg, infra, counters, hiring.CandidateCollection, logger),
		Applications: buildStore[hiring.Application](cfg, infra, counters, hiring.ApplicationCollection, logger),
	}

	// --- Services ---
	tenantService := tenant.NewService(tenantStore, logger)
	employeeService := employee.NewService(employeeStore, publisher, logger)
	leaveService := leave.NewService(leaveStore, publisher, logger)
	attendanceService := attendance.NewService(shiftStore, timesheetStore, logger)
	hiringService := hiring.NewService(hiringStores, publisher, logger)

	// --- Handlers ---
	tenantHandler := tenant.NewHandler(tenantService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	hiringHandler := hiring.NewHandler(hiringService, logger)

	// --- Middleware ---
	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	limit := rate.Limit(cfg.RateLimitRPS)
	tenantScoped := []gin.HandlerFunc{
		middleware.RequireTenant(),
		middleware.RateLimitByTenant(limit, cfg.RateLimitBurst),
	}
	if infra.Redis != nil {
		tenantScoped = append(tenantScoped, middleware.Idempotency(infra.Redis, middleware.IdempotencyConfig{}, logger))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		tenant.RegisterRoutes(api, tenantHandler, middleware.RateLimitByIP(limit, cfg.RateLimitBurst))
		employee.RegisterRoutes(api, employeeHandler, tenantScoped...)
		leave.RegisterRoutes(api, leaveHandler, tenantScoped...)
		attendance.RegisterRoutes(api, attendanceHandler, tenantScoped...)
		hiring.RegisterRoutes(api, hiringHandler, tenantScoped...)
	}
}
