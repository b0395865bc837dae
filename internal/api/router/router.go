package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/colejunck1/Task-Tracker/config"
	"github.com/colejunck1/Task-Tracker/internal/api/handler"
	"github.com/colejunck1/Task-Tracker/internal/api/middleware"
	"github.com/colejunck1/Task-Tracker/pkg/jwt"
	"github.com/colejunck1/Task-Tracker/pkg/redis"
)

// uploadBodyLimit caps multipart uploads (order PDFs, workbooks).
const uploadBodyLimit = 32 << 20 // 32MB

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, verifier *jwt.Verifier, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(uploadBodyLimit))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 (all routes behind session verification) ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(verifier, rdb))
	v1.Use(middleware.RateLimit(rdb, 300, time.Minute))
	{
		// boat orders
		orders := v1.Group("/boat-orders")
		{
			orders.POST("/upload", h.Order.Upload)
			orders.GET("", h.Order.List)
			orders.GET("/:id", h.Order.Get)
			orders.GET("/:id/pdf", h.Order.GetPDF)
		}

		// master task catalog
		taskData := v1.Group("/task-data")
		{
			taskData.GET("", h.TaskData.List)
			taskData.GET("/:id", h.TaskData.Get)
			taskData.POST("", h.TaskData.Create)
			taskData.PUT("/:id", h.TaskData.Update)
			taskData.DELETE("/:id", h.TaskData.Delete)
			taskData.POST("/import", h.TaskData.Import)
			taskData.POST("/import/preview", h.TaskData.PreviewImport)
			taskData.POST("/import/commit", h.TaskData.CommitImport)
		}

		// stations
		stations := v1.Group("/stations")
		{
			stations.GET("", h.Station.List)
			stations.GET("/:id", h.Station.Get)
			stations.POST("", h.Station.Create)
			stations.PUT("/reorder", h.Station.Reorder)
			stations.PUT("/:id", h.Station.Update)
			stations.DELETE("/:id", h.Station.Delete)
			stations.POST("/import", h.Station.Import)
		}

		// schedule groups
		groups := v1.Group("/schedule-groups")
		{
			groups.GET("", h.ScheduleGroup.List)
			groups.GET("/:id", h.ScheduleGroup.Get)
			groups.POST("", h.ScheduleGroup.Create)
			groups.PUT("/:id", h.ScheduleGroup.Update)
			groups.DELETE("/:id", h.ScheduleGroup.Delete)
			groups.POST("/bulk-delete", h.ScheduleGroup.BulkDelete)
			groups.POST("/import", h.ScheduleGroup.Import)
		}

		// models, their option catalogs and header lines
		models := v1.Group("/models")
		{
			models.GET("", h.Model.List)
			models.GET("/:id", h.Model.Get)
			models.POST("", h.Model.Create)
			models.PUT("/:id", h.Model.Update)
			models.DELETE("/:id", h.Model.Delete)

			models.GET("/:id/options", h.Option.ListModelOptions)
			models.POST("/:id/options", h.Option.AddModelOption)
			models.POST("/:id/options/import", h.Option.ImportModelOptions)

			models.GET("/:id/headers", h.Header.List)
			models.POST("/:id/headers", h.Header.Add)
			models.POST("/:id/headers/import", h.Header.Import)
		}
		v1.PUT("/model-options/:id", h.Option.UpdateModelOption)
		v1.DELETE("/model-options/:id", h.Option.DeleteModelOption)
		v1.PUT("/headers/:id", h.Header.Update)
		v1.DELETE("/headers/:id", h.Header.Delete)

		// do-not-show list
		doNotShow := v1.Group("/do-not-show-options")
		{
			doNotShow.GET("", h.Option.ListDoNotShow)
			doNotShow.POST("", h.Option.AddDoNotShow)
			doNotShow.PUT("/:id", h.Option.UpdateDoNotShow)
			doNotShow.DELETE("/:id", h.Option.DeleteDoNotShow)
			doNotShow.POST("/import", h.Option.ImportDoNotShow)
		}

		// per-hull task instances
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.GET("/:id", h.Task.Get)
			tasks.PUT("/:id/status", h.Task.UpdateStatus)
			tasks.PUT("/:id/dates", h.Task.UpdateDates)
		}

		// company holidays
		holidays := v1.Group("/holidays")
		{
			holidays.GET("", h.Holiday.List)
			holidays.GET("/:id", h.Holiday.Get)
			holidays.POST("", h.Holiday.Create)
			holidays.PUT("/:id", h.Holiday.Update)
			holidays.DELETE("/:id", h.Holiday.Delete)
			holidays.POST("/import-ics", h.Holiday.ImportICS)
		}

		// production schedule
		schedule := v1.Group("/production-schedule")
		{
			schedule.GET("", h.Schedule.List)
			schedule.GET("/:id", h.Schedule.Get)
			schedule.POST("", h.Schedule.Create)
			schedule.PUT("/:id/cell", h.Schedule.UpdateCell)
			schedule.DELETE("/:id", h.Schedule.Delete)
			schedule.POST("/:id/auto-schedule", h.Schedule.AutoSchedule)
		}

		// exports and importer templates
		export := v1.Group("/export")
		{
			export.GET("/task-data", h.Export.ExportTaskData)
			export.GET("/stations", h.Export.ExportStations)
			export.GET("/schedule-groups", h.Export.ExportScheduleGroups)
			export.GET("/do-not-show-options", h.Export.ExportDoNotShow)
			export.GET("/tasks-per-hull", h.Export.ExportTasksPerHull)
			export.GET("/production-schedule", h.Export.ExportProductionSchedule)
			export.GET("/templates/:kind", h.Export.Template)
			export.GET("/task-template-csv", h.Export.TaskCSVTemplate)
		}
	}

	return r
}
