package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "peerlend-backend/internal/adapter/http"
	mw "peerlend-backend/internal/adapter/middleware"
	"peerlend-backend/internal/adapter/repository/mysql"
	"peerlend-backend/internal/config"
	"peerlend-backend/internal/fx"
	"peerlend-backend/internal/infrastructure/cache"
	"peerlend-backend/internal/infrastructure/db"
	"peerlend-backend/internal/observability"
	"peerlend-backend/internal/policy"
	"peerlend-backend/internal/trust"
	investmentUC "peerlend-backend/internal/usecase/investment"
	loanUC "peerlend-backend/internal/usecase/loan"
	profileUC "peerlend-backend/internal/usecase/profile"
	repaymentUC "peerlend-backend/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger := observability.NewLogger(cfg.AppEnv)

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.AppEnv != "prod")
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	minPolicy, err := policy.FromName(cfg.MinInvestPolicy)
	if err != nil {
		log.Fatal(err)
	}

	fxOpts := []fx.Option{fx.WithTTL(time.Duration(cfg.RatesTTLSecs) * time.Second)}
	if cfg.RatesBaseURL != "" {
		fxOpts = append(fxOpts, fx.WithBaseURL(cfg.RatesBaseURL))
	}
	rates := fx.NewService(logger, fxOpts...)
	rates.StartRefresher(context.Background(), "USD", time.Duration(cfg.RatesTTLSecs)*time.Second)

	loanRepo := mysql.NewLoanRepository(gdb)
	investmentRepo := mysql.NewInvestmentRepository(gdb)
	borrowerRepo := mysql.NewBorrowerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	loans := loanUC.NewUsecase(loanRepo, uow)
	investments := investmentUC.NewUsecase(uow, minPolicy)
	repayments := repaymentUC.NewUsecase(uow, nil)
	profiles := profileUC.NewUsecase(borrowerRepo, investmentRepo, trust.ConfigFromName(cfg.TrustPenalty))

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loans)
	investH := httpadp.NewInvestmentHandler(investments)
	repayH := httpadp.NewRepaymentHandler(repayments)
	profileH := httpadp.NewProfileHandler(profiles, rates)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idem := mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	// routes
	e.GET("/health", h.Health)

	e.POST("/loans", loanH.CreateLoan, idem)
	e.GET("/loans", loanH.ListOpenLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.PUT("/loans/:loan_id", loanH.UpdateLoan)
	e.DELETE("/loans/:loan_id", loanH.DeleteLoan)
	e.GET("/loans/:loan_id/funded", loanH.GetFundedAmount)

	e.GET("/loans/:loan_id/investments", investH.ListForLoan)
	e.POST("/loans/:loan_id/investments", investH.Invest, idem)
	e.POST("/loans/:loan_id/repayment", repayH.Settle, idem)

	e.GET("/users/:user_id/investments", investH.ListByInvestor)
	e.GET("/users/:user_id/profile", profileH.GetProfile)
	e.PUT("/users/:user_id/profile", profileH.UpsertProfile)
	e.GET("/users/:user_id/trust-score", profileH.GetTrustScore)
	e.GET("/rates/convert", profileH.Convert)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
