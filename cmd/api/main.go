package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loantrust/internal/adapter/http"
	"loantrust/internal/adapter/middleware"
	"loantrust/internal/adapter/repository/sqlite"
	"loantrust/internal/config"
	"loantrust/internal/infrastructure/cache"
	"loantrust/internal/infrastructure/db"
	"loantrust/internal/notify"
	"loantrust/internal/seed"
	"loantrust/internal/usecase/ledger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenSQLite(cfg.SQLiteDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	if err := seed.Run(gdb); err != nil {
		log.Fatal(err)
	}

	clients := sqlite.NewClientRepository(gdb)
	loans := sqlite.NewLoanRepository(gdb)
	uowv := sqlite.NewGormUoW(gdb)
	led := ledger.NewUsecase(clients, loans, uowv, notify.NewLogNotifier())

	// derive real ratings from the seeded history before serving
	if err := led.RecomputeAll(context.Background()); err != nil {
		log.Fatal(err)
	}

	h := httpadp.NewHandler()
	ch := httpadp.NewClientHandler(led)
	lh := httpadp.NewLoanHandler(led)
	calc := httpadp.NewCalculatorHandler(led)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)
	e.GET("/clients", ch.ListClients)
	e.GET("/clients/:client_id", ch.GetClient)
	e.POST("/clients/:client_id/select", ch.SelectClient)
	e.GET("/clients/:client_id/loans", ch.GetClientLoans)
	e.GET("/clients/:client_id/eligibility", ch.GetEligibility)
	e.POST("/calculator/quote", calc.Quote)
	e.POST("/loans", lh.CreateLoan)
	e.PATCH("/loans/:loan_id", lh.UpdateLoan)
	e.DELETE("/loans/:loan_id", lh.DeleteLoan)
	e.POST("/loans/:loan_id/payments", lh.AddPayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
