package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/logger"
)

type InterestRateService interface {
	GetInterestRate(ctx context.Context) (commons.Response[models.InterestRateResponse], error)
	SetInterestRate(ctx context.Context, req models.SetInterestRateRequest) (commons.Response[models.InterestRateResponse], error)
}

type InterestRateController struct {
	service InterestRateService
}

func NewInterestRateController(service InterestRateService) *InterestRateController {
	return &InterestRateController{service: service}
}

func (c *InterestRateController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.interestRate))
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("/interest-rate", handler)
}

func (c *InterestRateController) interestRate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	switch r.Method {
	case http.MethodGet:
		logRequest(r, nil)
		response, err := c.service.GetInterestRate(r.Context())
		if err != nil {
			logError(r, err, nil)
			respond(w, r, statusFor(err), response, start)
			return
		}
		respond(w, r, http.StatusOK, response, start)
	case http.MethodPut:
		var req models.SetInterestRateRequest
		if !decodeBody[models.InterestRateResponse](w, r, &req, start) {
			return
		}
		logRequest(r, req)

		response, err := c.service.SetInterestRate(r.Context(), req)
		if err != nil {
			logError(r, err, logger.Fields{"message": response.Message})
			respond(w, r, statusFor(err), response, start)
			return
		}
		respond(w, r, http.StatusOK, response, start)
	default:
		respond(w, r, http.StatusMethodNotAllowed, commons.ErrorResponse[models.InterestRateResponse]("method not allowed"), start)
	}
}
