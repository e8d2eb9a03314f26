package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookstore-api/internal/config"
	"bookstore-api/internal/db"
	"bookstore-api/internal/httpserver"
	cartrepo "bookstore-api/internal/repository/cart"
	catalogrepo "bookstore-api/internal/repository/catalog"
	customerrepo "bookstore-api/internal/repository/customer"
	identityrepo "bookstore-api/internal/repository/identity"
	orderrepo "bookstore-api/internal/repository/order"
	ownerrepo "bookstore-api/internal/repository/owner"
	sessionrepo "bookstore-api/internal/repository/session"
	"bookstore-api/internal/service/auth"
	cartsvc "bookstore-api/internal/service/cart"
	catalogsvc "bookstore-api/internal/service/catalog"
	customersvc "bookstore-api/internal/service/customer"
	identitysvc "bookstore-api/internal/service/identity"
	ordersvc "bookstore-api/internal/service/order"
	ownersvc "bookstore-api/internal/service/owner"
	reportsvc "bookstore-api/internal/service/report"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	catalogRepo := catalogrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	identityRepo := identityrepo.NewPostgres(dbpool)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	ownerRepo := ownerrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	sessionRepo := sessionrepo.NewPostgres(dbpool)

	sessions := auth.NewManager(sessionRepo, cfg.SessionTTL)
	identityService := identitysvc.New(identityRepo)
	catalogService := catalogsvc.New(catalogRepo)
	cartService := cartsvc.New(cartRepo, catalogRepo)
	orderService := ordersvc.New(orderRepo, customerRepo, identityService, catalogRepo, logger)
	customerService := customersvc.New(customerRepo, sessions)
	ownerService := ownersvc.New(ownerRepo, customerRepo, sessions)
	reportService := reportsvc.New(orderRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		CustomerSvc: customerService,
		OwnerSvc:    ownerService,
		ReportSvc:   reportService,
		Sessions:    sessions,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
