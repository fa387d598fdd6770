package api

import (
	"net/http"

	_ "github.com/AlexZinkM/mini-dapp/docs"
	"github.com/AlexZinkM/mini-dapp/internal/handler"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Metrics
	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Wallet endpoints
	mux.HandleFunc("/wallet/connect", walletHandler.Connect)
	mux.HandleFunc("/wallet/session", walletHandler.Session)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/amount", walletHandler.SetAmount)
	mux.HandleFunc("/wallet/deposit", walletHandler.Deposit)
	mux.HandleFunc("/wallet/withdraw", walletHandler.Withdraw)
	mux.HandleFunc("/wallet/notifications", walletHandler.Notifications)
	mux.HandleFunc("/wallet/transactions", walletHandler.TransactionHistory)
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)

	return mux
}
