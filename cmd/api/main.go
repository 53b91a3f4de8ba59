package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/registro-docente/api/api/swagger"
	"github.com/registro-docente/api/internal/handler"
	"github.com/registro-docente/api/internal/middleware"
	"github.com/registro-docente/api/internal/repository"
	"github.com/registro-docente/api/internal/service"
	"github.com/registro-docente/api/pkg/cache"
	"github.com/registro-docente/api/pkg/config"
	"github.com/registro-docente/api/pkg/database"
	"github.com/registro-docente/api/pkg/logger"
	corsmiddleware "github.com/registro-docente/api/pkg/middleware/cors"
	reqidmiddleware "github.com/registro-docente/api/pkg/middleware/requestid"
)

// @title Registro Docente API
// @version 0.1.0
// @description Roster, attendance, grading and schedule backend for the teacher registry
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, derived caches disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	courseRepo := repository.NewCourseRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	institutionRepo := repository.NewInstitutionRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	rosterSvc := service.NewRosterService(studentRepo, courseRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, studentRepo, courseRepo, validate, logr)
	gradeSvc := service.NewGradeService(gradeRepo, studentRepo, courseRepo, cacheRepo, cfg.Academic.CentralizerCacheTTL, validate, logr)
	progressSvc := service.NewProgressService(progressRepo, courseRepo, validate, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, validate, logr)
	institutionSvc := service.NewInstitutionService(institutionRepo, validate, logr)
	reportSvc := service.NewReportService(gradeSvc, attendanceSvc, institutionSvc, logr)
	metricsSvc := service.NewMetricsService()

	courseHandler := handler.NewCourseHandler(courseSvc)
	rosterHandler := handler.NewRosterHandler(rosterSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)
	progressHandler := handler.NewProgressHandler(progressSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	institutionHandler := handler.NewInstitutionHandler(institutionSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/courses", courseHandler.List)
		api.POST("/courses", courseHandler.Create)
		api.DELETE("/courses/:label", courseHandler.Delete)
		api.GET("/courses/:label/students", courseHandler.ListStudents)

		api.GET("/courses/:label/roster", rosterHandler.Get)
		api.PUT("/courses/:label/roster", rosterHandler.Save)
		api.POST("/courses/:label/roster/import", rosterHandler.Import)
		api.DELETE("/courses/:label/roster/:studentId", rosterHandler.Delete)

		api.GET("/courses/:label/attendance", attendanceHandler.GetMonth)
		api.PUT("/courses/:label/attendance", attendanceHandler.Save)
		api.GET("/courses/:label/attendance/tallies", attendanceHandler.Tallies)

		api.GET("/courses/:label/grades", gradeHandler.Get)
		api.PUT("/courses/:label/grades", gradeHandler.Save)
		api.POST("/courses/:label/grades/import", gradeHandler.ImportScores)
		api.GET("/courses/:label/report-cards", gradeHandler.ReportCards)
		api.GET("/courses/:label/centralizer", gradeHandler.Centralizer)

		api.GET("/progress", progressHandler.Overview)
		api.PUT("/courses/:label/progress", progressHandler.Save)

		api.GET("/schedule", scheduleHandler.List)
		api.POST("/schedule", scheduleHandler.Save)
		api.DELETE("/schedule/:id", scheduleHandler.Delete)

		api.GET("/institution", institutionHandler.Get)
		api.PUT("/institution", institutionHandler.Save)

		if cfg.Exports.Enabled {
			api.GET("/courses/:label/reports/centralizer.pdf", reportHandler.CentralizerPDF)
			api.GET("/courses/:label/reports/centralizer.csv", reportHandler.CentralizerCSV)
			api.GET("/courses/:label/reports/attendance.csv", reportHandler.AttendanceCSV)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
