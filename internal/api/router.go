package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleetops-backend-go/internal/config"
	"github.com/fleetops/fleetops-backend-go/internal/database"
	"github.com/fleetops/fleetops-backend-go/internal/handler"
	"github.com/fleetops/fleetops-backend-go/internal/middleware"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
	"github.com/fleetops/fleetops-backend-go/internal/service"
	"github.com/fleetops/fleetops-backend-go/internal/timeline"
)

// SetupRouter wires repositories, services and handlers onto the gin engine
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Fleet Operations API is running",
		})
	})

	db := database.GetDB()

	// Repositories
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	itemRepo := repository.NewItemRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	gpsRepo := repository.NewGpsLogRepository(db)

	// Services
	vehicleService := service.NewVehicleService(vehicleRepo)
	driverService := service.NewDriverService(driverRepo)
	locationService := service.NewLocationService(locationRepo)
	itemService := service.NewItemService(itemRepo)
	operationService := service.NewOperationService(operationRepo, gpsRepo)
	inspectionService := service.NewInspectionService(inspectionRepo)
	activityService := service.NewActivityService(activityRepo)
	gpsService := service.NewGpsLogService(gpsRepo)
	timelineService := service.NewTimelineService(
		timeline.NewAggregator(operationRepo, inspectionRepo, activityRepo, gpsRepo),
	)

	// Handlers
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	driverHandler := handler.NewDriverHandler(driverService)
	locationHandler := handler.NewLocationHandler(locationService)
	itemHandler := handler.NewItemHandler(itemService)
	operationHandler := handler.NewOperationHandler(operationService)
	inspectionHandler := handler.NewInspectionHandler(inspectionService)
	activityHandler := handler.NewActivityHandler(activityService)
	gpsHandler := handler.NewGpsHandler(gpsService)
	timelineHandler := handler.NewTimelineHandler(timelineService)

	api := r.Group("/api/v1")

	// Reads are open; mutations sit behind the JWT guard when enabled
	reads := api
	writes := api.Group("")
	if cfg.AuthEnabled {
		writes.Use(middleware.Auth(cfg.JWTSecret))
	}

	// Vehicles
	reads.GET("/vehicles", vehicleHandler.List)
	reads.GET("/vehicles/:id", vehicleHandler.GetByID)
	writes.POST("/vehicles", vehicleHandler.Create)
	writes.PUT("/vehicles/:id", vehicleHandler.Update)
	writes.DELETE("/vehicles/:id", vehicleHandler.Delete)

	// Drivers
	reads.GET("/drivers", driverHandler.List)
	reads.GET("/drivers/:id", driverHandler.GetByID)
	writes.POST("/drivers", driverHandler.Create)
	writes.PUT("/drivers/:id", driverHandler.Update)
	writes.DELETE("/drivers/:id", driverHandler.Delete)

	// Locations
	reads.GET("/locations", locationHandler.List)
	reads.GET("/locations/:id", locationHandler.GetByID)
	writes.POST("/locations", locationHandler.Create)
	writes.PUT("/locations/:id", locationHandler.Update)
	writes.DELETE("/locations/:id", locationHandler.Delete)

	// Items
	reads.GET("/items", itemHandler.List)
	reads.GET("/items/:id", itemHandler.GetByID)
	writes.POST("/items", itemHandler.Create)
	writes.PUT("/items/:id", itemHandler.Update)
	writes.DELETE("/items/:id", itemHandler.Delete)

	// Operations
	reads.GET("/operations", operationHandler.List)
	reads.GET("/operations/:id", operationHandler.GetByID)
	writes.POST("/operations", operationHandler.Create)
	writes.PUT("/operations/:id", operationHandler.Update)
	writes.DELETE("/operations/:id", operationHandler.Delete)
	writes.POST("/operations/:id/start", operationHandler.Start)
	writes.POST("/operations/:id/complete", operationHandler.Complete)

	// Nested operation resources
	reads.GET("/operations/:id/inspections", inspectionHandler.ListByOperation)
	writes.POST("/operations/:id/inspections", inspectionHandler.Create)
	reads.GET("/operations/:id/activities", activityHandler.ListByOperation)
	writes.POST("/operations/:id/activities", activityHandler.Create)
	writes.PUT("/activities/:id", activityHandler.Update)
	reads.GET("/operations/:id/gps", gpsHandler.ListByOperation)
	writes.POST("/operations/:id/gps", gpsHandler.Ingest)

	// Timeline aggregation
	reads.GET("/operations/:id/timeline", timelineHandler.GetOperationTimeline)

	return r
}
