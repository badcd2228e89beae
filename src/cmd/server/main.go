package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-account/src/internal/adapter/http/middleware"
	"github.com/api-sage/bank-account/src/internal/adapter/http/router"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-account/src/internal/config"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
	"github.com/api-sage/bank-account/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger.Configure(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ledger, err := domain.NewLedger(cfg.InterestRate)
	if err != nil {
		log.Fatalf("build ledger: %v", err)
	}

	channelKeyHash := []byte(cfg.ChannelKeyHash)
	if len(channelKeyHash) == 0 {
		channelKeyHash, err = middleware.HashChannelKey(cfg.ChannelKey)
		if err != nil {
			log.Fatalf("hash channel key: %v", err)
		}
	}

	accountService := services.NewAccountService(memory.NewAccountRepository(), ledger)
	interestRateService := services.NewInterestRateService(ledger.InterestRate)

	handler := router.New(
		controller.NewAccountController(accountService),
		controller.NewInterestRateController(interestRateService),
		middleware.BasicAuth(cfg.ChannelID, channelKeyHash),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", logger.Fields{
			"addr":         cfg.HTTPAddr,
			"interestRate": cfg.InterestRate,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down", logger.Fields{
			"transactionsIssued": ledger.Sequencer.Issued(),
		})
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("http server stopped with error", err, nil)
		os.Exit(1)
	}
}
