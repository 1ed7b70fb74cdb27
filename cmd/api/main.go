// Command api starts the library lending backend: REST endpoints for
// issue/return/payment plus the periodic overdue sweep.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "library-backend/internal/adapter/http"
	appmw "library-backend/internal/adapter/middleware"
	"library-backend/internal/adapter/repository/mysql"
	"library-backend/internal/config"
	"library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/db"
	"library-backend/internal/notify"
	"library-backend/internal/usecase/account"
	"library-backend/internal/usecase/catalog"
	"library-backend/internal/usecase/lending"
	"library-backend/internal/usecase/overdue"
	"library-backend/internal/usecase/payment"
	"library-backend/internal/usecase/profile"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), logger)
	if err != nil {
		logger.Fatal("open mysql", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("open redis", zap.Error(err))
	}

	var notifier notify.Notifier = notify.NewLog(logger)
	if cfg.SMTPAddr != "" {
		notifier = notify.NewSMTP(cfg.SMTPAddr, cfg.SMTPFrom)
	}

	books := mysql.NewBookRepository(gdb)
	students := mysql.NewStudentRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	lendingUC := lending.NewUsecase(uow, notifier, logger, cfg.FineRate, cfg.LoanPeriod)
	paymentUC := payment.NewUsecase(uow, notifier, logger, cfg.PaymentKeyID, cfg.PaymentKeySecret, cfg.FineRate)
	profileUC := profile.NewUsecase(students, loans, cfg.FineRate)
	accountUC := account.NewUsecase(students)
	catalogUC := catalog.NewUsecase(books)

	sweeper := overdue.NewSweeper(loans, students, notifier, logger, cfg.FineRate)
	go sweeper.Start(ctx, cfg.SweepInterval)

	h := httpadp.NewHandler()
	lendingH := httpadp.NewLendingHandler(lendingUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	studentH := httpadp.NewStudentHandler(accountUC, profileUC)
	bookH := httpadp.NewBookHandler(catalogUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/register", studentH.Register)
	api.POST("/login", studentH.Login)
	api.GET("/students/:regno", studentH.Profile)
	api.GET("/students/:regno/history", studentH.History)

	api.POST("/books", bookH.Create)
	api.GET("/books", bookH.List)
	api.GET("/books/:id", bookH.Get)
	api.PUT("/books/:id", bookH.Update)
	api.DELETE("/books/:id", bookH.Delete)

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)
	api.POST("/issue", lendingH.Issue, idemp)
	api.POST("/return", lendingH.Return, idemp)
	api.POST("/payments/order", paymentH.CreateOrder)
	api.POST("/payments/verify", paymentH.Verify, idemp)

	go func() {
		addr := ":" + cfg.AppPort
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
