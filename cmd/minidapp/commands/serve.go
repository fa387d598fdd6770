package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/mini-dapp/dapp"
	"github.com/AlexZinkM/mini-dapp/internal/api"
	"github.com/AlexZinkM/mini-dapp/internal/client"
	"github.com/AlexZinkM/mini-dapp/internal/config"
	"github.com/AlexZinkM/mini-dapp/internal/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with Swagger UI and /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			feed := dapp.NewFeed(0, log)
			w, err := newWallet(feed, reg)
			if err != nil {
				return err
			}
			defer w.Close()

			cfg := config.Get()
			walletHandler, err := handler.NewWalletHandler(handler.WalletHandlerConfig{
				Controller:     w.controller,
				Feed:           feed,
				Price:          client.NewCoinGeckoClient(cfg.CoinGeckoURL),
				PriceCurrency:  cfg.PriceCurrency,
				WalletFilePath: cfg.WalletFilePath,
				Password:       config.GetWalletPasswordBytes,
				Logger:         log,
			})
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + config.GetPort(),
				Handler:           api.SetupRouter(walletHandler, reg),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("server starting",
					zap.String("addr", srv.Addr),
					zap.String("contract", config.GetContractAddress().Hex()),
					zap.String("swagger", "http://localhost"+srv.Addr+"/swagger/index.html"))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
