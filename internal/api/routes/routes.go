// server/internal/api/routes/routes.go
package routes

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"waste-management-api-server/config"
	"waste-management-api-server/internal/api/handlers"
	"waste-management-api-server/internal/api/middleware"
	"waste-management-api-server/internal/metrics"
	"waste-management-api-server/internal/service"
)

// Deps are the components the router hands to its handlers.
type Deps struct {
	Config      config.Config
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	Bins        *service.BinService
	Users       *service.UserService
	Drivers     *service.DriverService
	Schedules   *service.ScheduleService
	Payments    *service.PaymentService
	Collections *service.CollectionService
	Reports     *service.ReportService // nil disables the report route
	Ping        func(ctx context.Context) error
}

// SetupRouter wires middleware and every route of the API.
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(d.Logger))
	router.Use(middleware.Metrics(d.Metrics))
	router.Use(cors.New(corsConfig(d.Config.App.CorsOrigins)))

	// Handlers
	binHandler := &handlers.BinHandler{Bins: d.Bins, Collections: d.Collections, Reports: d.Reports}
	collectionHandler := &handlers.CollectionHandler{Collections: d.Collections}
	driverHandler := &handlers.DriverHandler{Drivers: d.Drivers}
	paymentHandler := &handlers.PaymentHandler{Payments: d.Payments}
	scheduleHandler := &handlers.ScheduleHandler{Schedules: d.Schedules}
	userHandler := &handlers.UserHandler{Users: d.Users}
	healthHandler := &handlers.HealthHandler{Ping: d.Ping}

	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	bins := router.Group("/Bin")
	{
		bins.POST("/addbin", binHandler.CreateBin)
		bins.GET("/getbindetails", binHandler.GetBinsByUser)
		bins.GET("/:binId", binHandler.GetBin)
		bins.PUT("/:binId/status", binHandler.UpdateBinStatus)
		bins.GET("/:binId/collections/monthly", binHandler.GetMonthlyCollections)
		bins.GET("/:binId/collections/monthly-total", binHandler.GetMonthlyCollectionsWithTotal)
		if d.Reports != nil {
			bins.POST("/:binId/collections/report", binHandler.ExportMonthlyReport)
		}
	}

	collectors := router.Group("/collector")
	{
		collectors.POST("/addcollecter", collectionHandler.RecordCollection)
		collectors.GET("/getcollecterdetails", collectionHandler.GetCollectionsByUser)
	}

	drivers := router.Group("/drivers")
	{
		drivers.POST("/add", driverHandler.AddDriver)
		drivers.GET("/all", driverHandler.GetAllDrivers)
		drivers.GET("/:driverId", driverHandler.GetDriver)
		drivers.PUT("/update/:driverId", driverHandler.UpdateDriver)
		drivers.DELETE("/delete/:driverId", driverHandler.DeleteDriver)
		drivers.DELETE("/deleteAll", driverHandler.DeleteAllDrivers)
	}

	payments := router.Group("/Payment")
	{
		payments.POST("/addpayment", paymentHandler.AddPayment)
		payments.GET("/getdetails", paymentHandler.GetPayments)
		payments.GET("/nextPayment", paymentHandler.GetNextPayment)
	}

	schedules := router.Group("/schedule")
	{
		schedules.POST("/add", scheduleHandler.AddSchedule)
		schedules.GET("/getSchedules", scheduleHandler.GetSchedules)
		schedules.GET("/getSchedule", scheduleHandler.GetSchedule)
		schedules.PUT("/update/:scheduleId", scheduleHandler.UpdateSchedule)
		schedules.DELETE("/delete/:scheduleId", scheduleHandler.DeleteSchedule)
		schedules.DELETE("/deleteAll", scheduleHandler.DeleteAllSchedules)
	}

	users := router.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.GET("/list", userHandler.ListByCredentials)
		users.GET("/findById", userHandler.FindByUsername)
		users.GET("/status", userHandler.GetStatus)
		users.PUT("/status", userHandler.UpdateStatus)
		users.GET("/points", userHandler.GetPoints)
		users.PUT("/points", userHandler.UpdatePoints)
		users.GET("/collections/yearly", collectionHandler.GetYearlyCollections)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
