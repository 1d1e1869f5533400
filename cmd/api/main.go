package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "credwise-backend/internal/adapter/http"
	idemp "credwise-backend/internal/adapter/middleware"
	"credwise-backend/internal/adapter/repository/mysql"
	"credwise-backend/internal/config"
	"credwise-backend/internal/infrastructure/cache"
	"credwise-backend/internal/infrastructure/db"
	approvalUC "credwise-backend/internal/usecase/approval"
	loanUC "credwise-backend/internal/usecase/loan"
	paymentUC "credwise-backend/internal/usecase/payment"
	sweepUC "credwise-backend/internal/usecase/sweep"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loans := mysql.NewLoanRepository(gdb)
	installments := mysql.NewInstallmentRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loanUsecase := loanUC.NewUsecase(loans, installments, payments)
	approvalUsecase := approvalUC.NewUsecase(uow)
	paymentUsecase := paymentUC.NewUsecase(uow)
	sweepUsecase := sweepUC.NewUsecase(loans, uow)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	approvalHandler := httpadp.NewApprovalHandler(approvalUsecase)
	paymentHandler := httpadp.NewPaymentHandler(paymentUsecase)
	sweepHandler := httpadp.NewSweepHandler(sweepUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.POST("/loans", loanHandler.CreateLoan)
	api.GET("/loans/:loan_id", loanHandler.GetLoan)
	api.GET("/loans/:loan_id/schedule", loanHandler.GetSchedule)
	api.GET("/loans/:loan_id/payments", loanHandler.GetPayments)
	api.POST("/loans/:loan_id/approve", approvalHandler.ApproveLoan)
	api.POST("/loans/:loan_id/payments", paymentHandler.SubmitPayment,
		idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.POST("/sweep", sweepHandler.RunSweep)

	if cfg.SweepIntervalHours > 0 {
		go runSweepLoop(sweepUsecase, time.Duration(cfg.SweepIntervalHours)*time.Hour)
	}

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// runSweepLoop keeps overdue state fresh even when nobody calls the
// on-demand endpoint. The sweep is idempotent, so overlapping with a
// manual run is harmless.
func runSweepLoop(uc *sweepUC.Usecase, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		res, err := uc.Run(ctx, time.Now())
		cancel()
		if err != nil {
			log.Printf("sweep: run failed: %v", err)
			continue
		}
		log.Printf("sweep: scanned=%d updated=%d failed=%d", res.Scanned, res.Updated, res.Failed)
	}
}
