package router

import (
	"net/http"

	"github.com/api-sage/bank-account/src/internal/adapter/http/middleware"
)

type AccountRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type InterestRateRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	accountController AccountRouteRegistrar,
	interestRateController InterestRateRouteRegistrar,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if accountController != nil {
		accountController.RegisterRoutes(mux, authMiddleware)
	}
	if interestRateController != nil {
		interestRateController.RegisterRoutes(mux, authMiddleware)
	}

	return middleware.RequestID(mux)
}
