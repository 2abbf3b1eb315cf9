package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/schoolhub/sims-backend/internal/config"
	"github.com/schoolhub/sims-backend/internal/handler"
	"github.com/schoolhub/sims-backend/internal/middleware"
	"github.com/schoolhub/sims-backend/internal/migration"
	"github.com/schoolhub/sims-backend/internal/repository"
	"github.com/schoolhub/sims-backend/internal/routes"
	"github.com/schoolhub/sims-backend/internal/service"
	"github.com/schoolhub/sims-backend/internal/ws"
	pkgcache "github.com/schoolhub/sims-backend/pkg/cache"
	"github.com/schoolhub/sims-backend/pkg/jwt"
	pkglogger "github.com/schoolhub/sims-backend/pkg/logger"
	pkgredis "github.com/schoolhub/sims-backend/pkg/redis"
	pkgstorage "github.com/schoolhub/sims-backend/pkg/storage"
)

// @title           SIMS Backend API
// @version         1.0
// @description     School Information Management System - REST backend
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		pkglogger.Warn("Failed to connect to database: %v (continuing without DB)", err)
		db = nil
	} else {
		pkglogger.Info("Connected to MySQL")
		if err := migration.Run(db); err != nil {
			pkglogger.Warn("Migration warning: %v", err)
		}
	}

	// Redis
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Cache service initialized")
	}

	// S3-compatible storage
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		var s3Err error
		s3Client, s3Err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if s3Err != nil {
			pkglogger.Warn("S3 storage init failed: %v (continuing without S3)", s3Err)
			s3Client = nil
		} else {
			pkglogger.Info("Connected to S3 storage")
		}
	}

	// WebSocket hub
	wsHub := ws.NewHub(redisClient)
	go wsHub.Run()

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiresIn),
		time.Duration(cfg.JWT.RefreshIn),
	)

	router := gin.Default()

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	corsConfig := cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && !cfg.IsDevelopment() {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sims-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if db != nil {
		// Repositories
		userRepo := repository.NewUserRepository(db)
		messageRepo := repository.NewMessageRepository(db)
		studentRepo := repository.NewStudentRepository(db)
		teacherRepo := repository.NewTeacherRepository(db)
		classRepo := repository.NewClassRepository(db)
		attendanceRepo := repository.NewAttendanceRepository(db)
		examRepo := repository.NewExamRepository(db)
		feeRepo := repository.NewFeeRepository(db)
		announcementRepo := repository.NewAnnouncementRepository(db)
		scheduleRepo := repository.NewScheduleRepository(db)
		transportRepo := repository.NewTransportRepository(db)
		payrollRepo := repository.NewPayrollRepository(db)

		// Services
		authSvc := service.NewAuthService(userRepo, jwtManager)
		messageSvc := service.NewMessageService(messageRepo, wsHub)
		fileSvc := service.NewFileService(s3Client)
		studentSvc := service.NewStudentService(studentRepo, classRepo)
		teacherSvc := service.NewTeacherService(teacherRepo)
		classSvc := service.NewClassService(classRepo, teacherRepo)
		attendanceSvc := service.NewAttendanceService(attendanceRepo, classRepo)
		examSvc := service.NewExamService(examRepo, classRepo)
		feeSvc := service.NewFeeService(feeRepo, studentRepo)
		announcementSvc := service.NewAnnouncementService(announcementRepo, cacheService, wsHub)
		scheduleSvc := service.NewScheduleService(scheduleRepo, classRepo, cacheService)
		transportSvc := service.NewTransportService(transportRepo, studentRepo)
		payrollSvc := service.NewPayrollService(payrollRepo, teacherRepo)
		dashboardSvc := service.NewDashboardService(studentRepo, teacherRepo, feeRepo, attendanceRepo, cacheService)

		// Handlers + routes
		routes.SetupAuth(router, handler.NewAuthHandler(authSvc), jwtManager)
		routes.SetupMessages(router, handler.NewMessageHandler(messageSvc, fileSvc), jwtManager)
		routes.SetupStudents(router, handler.NewStudentHandler(studentSvc), jwtManager)
		routes.SetupTeachers(router, handler.NewTeacherHandler(teacherSvc), jwtManager)
		routes.SetupClasses(router, handler.NewClassHandler(classSvc), jwtManager)
		routes.SetupAttendance(router, handler.NewAttendanceHandler(attendanceSvc), jwtManager)
		routes.SetupExams(router, handler.NewExamHandler(examSvc), jwtManager)
		routes.SetupFees(router, handler.NewFeeHandler(feeSvc), jwtManager)
		routes.SetupAnnouncements(router, handler.NewAnnouncementHandler(announcementSvc), jwtManager)
		routes.SetupSchedule(router, handler.NewScheduleHandler(scheduleSvc), jwtManager)
		routes.SetupTransport(router, handler.NewTransportHandler(transportSvc), jwtManager)
		routes.SetupPayroll(router, handler.NewPayrollHandler(payrollSvc), jwtManager)
		routes.SetupDashboard(router, handler.NewDashboardHandler(dashboardSvc), jwtManager)
		routes.SetupUpload(router, handler.NewUploadHandler(fileSvc), jwtManager)
		routes.SetupWS(router, handler.NewWSHandler(wsHub, allowOrigins), jwtManager)

		// Retention sweep for trashed messages
		if cfg.Retention.Enabled {
			retentionSvc, err := service.NewRetentionService(messageRepo, cfg.Retention.Cron, cfg.Retention.Days)
			if err != nil {
				pkglogger.Warn("Retention scheduler disabled: %v", err)
			} else {
				stop := retentionSvc.Start(context.Background())
				defer stop()
			}
		}
	} else {
		pkglogger.Warn("Database unavailable; API routes are not registered")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDB opens the MySQL connection and configures the pool
func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	} else {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
