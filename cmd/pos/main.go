package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	cartapp "github.com/dwikikusuma/simple-pos/internal/cart/app"
	cartrest "github.com/dwikikusuma/simple-pos/internal/cart/rest"
	checkoutapp "github.com/dwikikusuma/simple-pos/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/simple-pos/internal/checkout/infra/adapter"
	checkoutrest "github.com/dwikikusuma/simple-pos/internal/checkout/rest"
	inventoryapp "github.com/dwikikusuma/simple-pos/internal/inventory/app"
	"github.com/dwikikusuma/simple-pos/internal/inventory/infra/flatfile"
	inventoryrest "github.com/dwikikusuma/simple-pos/internal/inventory/rest"
	receiptsapp "github.com/dwikikusuma/simple-pos/internal/receipts/app"
	receiptsrest "github.com/dwikikusuma/simple-pos/internal/receipts/rest"
	"github.com/dwikikusuma/simple-pos/pkg/config"
	"github.com/dwikikusuma/simple-pos/pkg/logger"
	"github.com/dwikikusuma/simple-pos/pkg/shutdown"
	"github.com/gorilla/mux"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "pos",
		Usage: "single-user point-of-sale core",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the POS HTTP API",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "http-port", Value: cfg.HTTPPort, Usage: "port the API listens on"},
					&cli.StringFlag{Name: "inventory-file", Value: cfg.InventoryFile, Usage: "backing file for the inventory"},
					&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "debug, info, warn or error"},
				},
				Action: func(c *cli.Context) error {
					cfg.HTTPPort = c.Int("http-port")
					cfg.InventoryFile = c.String("inventory-file")
					cfg.LogLevel = c.String("log-level")
					return serve(c.Context, cfg)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(parent context.Context, cfg config.Config) error {
	log := logger.New(logger.Options{Service: "pos", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(parent)
	defer cancel()

	// Inventory
	store := flatfile.New(cfg.InventoryFile)
	inventorySvc := inventoryapp.NewService(store)
	if err := inventorySvc.Load(ctx); err != nil {
		// A bad backing file is reported, not fatal: whatever parsed is kept.
		log.Error("inventory load", slog.Any("err", err), slog.String("file", cfg.InventoryFile))
	}

	// Cart
	cartSvc := cartapp.NewService()

	// Checkout (adapters) + receipt history
	cartAccess := checkoutadapter.NewCartServiceAccess(cartSvc)
	inventoryAccess := checkoutadapter.NewInventoryServiceAccess(inventorySvc)
	checkoutSvc := checkoutapp.NewService(cartAccess, inventoryAccess)
	receiptsSvc := receiptsapp.NewService()

	r := mux.NewRouter()
	inventoryrest.NewHandler(inventorySvc).Register(r)
	cartrest.NewHandler(cartSvc).Register(r)
	checkoutrest.NewHandler(checkoutSvc, receiptsSvc).Register(r)
	receiptsrest.NewHandler(receiptsSvc).Register(r)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr), slog.String("inventory", cfg.InventoryFile))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http server error", slog.Any("err", err))
		return err
	}
	log.Info("bye")
	return nil
}
