package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ats-hr/payslip-backend-go/internal/config"
	appHTTP "github.com/ats-hr/payslip-backend-go/internal/handler/http"
	"github.com/ats-hr/payslip-backend-go/internal/pkg/database"
	"github.com/ats-hr/payslip-backend-go/internal/repository/postgresql"
	payslipService "github.com/ats-hr/payslip-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.Connect(cfg.DatabaseURL(), cfg.Database.ConnectRetries, cfg.Database.ConnectRetryDelay)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := postgresql.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal("Error initializing database schema: ", err)
	}

	payslipRepo := postgresql.NewPayslipRepository(db)
	payslipSvc := payslipService.NewPayslipService(payslipRepo)

	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	healthHandler := appHTTP.NewHealthHandler(db)

	router := appHTTP.NewRouter(cfg, payslipHandler, healthHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost:%d\n", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	stop()
	fmt.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
