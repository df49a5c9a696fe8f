package main

import (
	"context"
	"errors"
	"interestbank/internal/config"
	"interestbank/internal/domain"
	httpx "interestbank/internal/http"
	"interestbank/internal/money"
	"interestbank/internal/portfolio"
	"interestbank/internal/repo"
	"interestbank/internal/sample"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	display, err := money.NewDisplay(cfg.Currency, cfg.Locale)
	if err != nil {
		log.Fatalf("currency display: %v", err)
	}

	p := portfolio.New(domain.DefaultPolicy())
	customers := portfolio.NewCustomers()
	deps := httpx.Deps{
		Portfolio:     p,
		Customers:     customers,
		Display:       display,
		DefaultMonths: cfg.DefaultMonths,
	}

	switch cfg.AccountSource {
	case config.SourceSample:
		sample.Load(p, customers)
		log.Printf("loaded %d sample accounts", p.Len())
	case config.SourcePostgres:
		dbPool, err := repo.NewPool(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer dbPool.Close()

		n, err := repo.LoadPortfolio(ctx, dbPool, p, customers)
		if err != nil {
			log.Fatalf("load accounts failed: %v", err)
		}
		log.Printf("loaded %d accounts from postgres", n)
		deps.DB = dbPool
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpx.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("interest server starting on", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Printf("server stopped with error: %v", err)
		return
	}
	log.Println("interest server stopped")
}
