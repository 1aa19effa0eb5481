package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avoronov/musicschool-server/internal/api/http/handler"
	"github.com/avoronov/musicschool-server/internal/api/http/middleware"
	"github.com/avoronov/musicschool-server/internal/api/http/router"
	"github.com/avoronov/musicschool-server/internal/api/httpctx"
	"github.com/avoronov/musicschool-server/internal/config"
	"github.com/avoronov/musicschool-server/internal/logger"
	"github.com/avoronov/musicschool-server/internal/model"
	"github.com/avoronov/musicschool-server/internal/repository/postgres"
	"github.com/avoronov/musicschool-server/internal/server"
	"github.com/avoronov/musicschool-server/internal/service"
	"github.com/avoronov/musicschool-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	teacherRepo := postgres.NewTeacherRepository(db)
	instrumentRepo := postgres.NewInstrumentRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, tokenManager, logger)
	studentService := service.NewStudent(studentRepo, logger)
	teacherService := service.NewTeacher(teacherRepo, logger)
	instrumentService := service.NewInstrument(instrumentRepo, logger)
	scheduleService := service.NewSchedule(scheduleRepo, studentRepo, teacherRepo, logger)

	r := router.New(
		handler.NewAuth(authService, ctxMgr, logger),
		handler.NewStudent(studentService, logger),
		handler.NewTeacher(teacherService, logger),
		handler.NewInstrument(instrumentService, logger),
		handler.NewSchedule(scheduleService, logger),
		middleware.NewAuthenticate(tokenManager, userRepo, ctxMgr, logger),
		middleware.NewLogging(logger),
		middleware.NewCORS(cfg.CORS.AllowedOrigins),
	)

	httpServer := server.NewHTTPServer(fmt.Sprintf(":%s", cfg.HTTP.Port), r.Register())

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
