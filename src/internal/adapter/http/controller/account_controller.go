package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/logger"
)

type AccountService interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.TransactionResponse], error)
	Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.TransactionResponse], error)
	PayInterest(ctx context.Context, req models.PayInterestRequest) (commons.Response[models.TransactionResponse], error)
	DecodeConfirmation(ctx context.Context, req models.DecodeConfirmationRequest) (commons.Response[models.ConfirmationResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	routes := map[string]http.HandlerFunc{
		"/accounts":              c.accounts,
		"/accounts/deposit":      c.deposit,
		"/accounts/withdraw":     c.withdraw,
		"/accounts/pay-interest": c.payInterest,
		"/confirmations/decode":  c.decodeConfirmation,
	}

	for pattern, fn := range routes {
		handler := http.Handler(fn)
		if authMiddleware != nil {
			handler = authMiddleware(handler)
		}
		mux.Handle(pattern, handler)
	}
}

func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.createAccount(w, r)
	case http.MethodGet:
		c.getAccount(w, r)
	default:
		respond(w, r, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"), time.Now())
	}
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if !decodeBody[models.AccountResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateAccount(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusCreated, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetAccount(r.Context(), r.URL.Query().Get("accountNumber"))
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.amountOperation(w, r, c.service.Deposit)
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.amountOperation(w, r, c.service.Withdraw)
}

func (c *AccountController) amountOperation(
	w http.ResponseWriter,
	r *http.Request,
	operation func(context.Context, models.AmountRequest) (commons.Response[models.TransactionResponse], error),
) {
	start := time.Now()
	if r.Method != http.MethodPost {
		respond(w, r, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"), start)
		return
	}

	var req models.AmountRequest
	if !decodeBody[models.TransactionResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := operation(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) payInterest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		respond(w, r, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"), start)
		return
	}

	var req models.PayInterestRequest
	if !decodeBody[models.TransactionResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.PayInterest(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func (c *AccountController) decodeConfirmation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		respond(w, r, http.StatusMethodNotAllowed, commons.ErrorResponse[models.ConfirmationResponse]("method not allowed"), start)
		return
	}

	var req models.DecodeConfirmationRequest
	if !decodeBody[models.ConfirmationResponse](w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.DecodeConfirmation(r.Context(), req)
	if err != nil {
		logError(r, err, logger.Fields{"message": response.Message})
		respond(w, r, statusFor(err), response, start)
		return
	}

	respond(w, r, http.StatusOK, response, start)
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logError(r, err, nil)
		respond(w, r, http.StatusBadRequest, commons.ErrorResponse[T]("invalid request body", err.Error()), start)
		return false
	}
	return true
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload any, start time.Time) {
	writeJSON(w, status, payload)
	logResponse(r, status, payload, start)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
