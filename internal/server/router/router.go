package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/server/handlers"
)

// Handlers groups the route handlers wired by New.
type Handlers struct {
	Employees    *handlers.EmployeeHandler
	Attendance   *handlers.AttendanceHandler
	Advances     *handlers.AdvanceHandler
	Customers    *handlers.CustomerHandler
	SellingRates *handlers.SellingRateHandler
	Reports      *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Office App API Running")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/employees", h.Employees.Create)
	r.GET("/employees", h.Employees.List)
	r.PATCH("/employees/:id", h.Employees.Update)
	r.DELETE("/employees/:id", h.Employees.Delete)

	r.POST("/attendance", h.Attendance.Mark)
	r.GET("/attendance/date/:date", h.Attendance.ListByDate)

	r.GET("/advance/date/:date", h.Advances.ListByDate)
	r.GET("/advance/:employeeId/:month", h.Advances.MonthlySummary)
	r.POST("/advance", h.Advances.Create)
	r.PATCH("/advance", h.Advances.Update)

	r.GET("/salary/:employeeId/:month", h.Reports.Salary)
	r.GET("/reports/daily/:date", h.Reports.Daily)

	r.POST("/customers", h.Customers.Create)
	r.GET("/customers", h.Customers.List)
	r.DELETE("/customers/:id", h.Customers.Delete)

	r.POST("/sellingRate", h.SellingRates.Append)
	r.GET("/sellingRate", h.SellingRates.Read)
	r.PATCH("/sellingRate", h.SellingRates.Patch)
	r.DELETE("/sellingRate/customer", h.SellingRates.RemoveCustomer)
	r.DELETE("/sellingRate/date", h.SellingRates.RemoveDate)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
