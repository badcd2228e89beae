package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/api-sage/bank-account/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-account/src/internal/adapter/http/middleware"
	"github.com/api-sage/bank-account/src/internal/adapter/http/router"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/usecase/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func newHandler(t *testing.T, auth bool) http.Handler {
	t.Helper()
	ledger, err := domain.NewLedger(domain.DefaultInterestRate)
	require.NoError(t, err)

	var authMiddleware func(http.Handler) http.Handler
	if auth {
		hash, err := middleware.HashChannelKey("secret")
		require.NoError(t, err)
		authMiddleware = middleware.BasicAuth("tester", hash)
	}

	return router.New(
		controller.NewAccountController(services.NewAccountService(memory.NewAccountRepository(), ledger)),
		controller.NewInterestRateController(services.NewInterestRateService(ledger.InterestRate)),
		authMiddleware,
	)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.SetBasicAuth("tester", "secret")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func TestAccountLifecycleOverHTTP(t *testing.T) {
	h := newHandler(t, true)

	rr, env := do(t, h, http.MethodPost, "/accounts", `{"accountNumber":"A100","firstName":"Eric","lastName":"Idle","initialBalance":"100.00"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.True(t, env.Success)

	rr, env = do(t, h, http.MethodPost, "/accounts/withdraw", `{"accountNumber":"A100","amount":"200"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var txn struct {
		ConfirmationCode string `json:"confirmationCode"`
		Status           string `json:"status"`
		Balance          string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &txn))
	assert.True(t, strings.HasPrefix(txn.ConfirmationCode, "X-A100-"))
	assert.Equal(t, "REJECTED", txn.Status)
	assert.Equal(t, "100", txn.Balance)

	rr, env = do(t, h, http.MethodPost, "/accounts/deposit", `{"accountNumber":"A100","amount":"100"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(env.Data, &txn))
	assert.True(t, strings.HasPrefix(txn.ConfirmationCode, "D-A100-"))
	assert.Equal(t, "200", txn.Balance)

	rr, env = do(t, h, http.MethodPost, "/accounts/withdraw", `{"accountNumber":"A100","amount":"20"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(env.Data, &txn))
	assert.True(t, strings.HasPrefix(txn.ConfirmationCode, "W-A100-"))
	assert.Equal(t, "180", txn.Balance)

	rr, env = do(t, h, http.MethodPost, "/confirmations/decode", `{"confirmationCode":"`+txn.ConfirmationCode+`","timezone":{"name":"MST","offsetHours":-7}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var receipt struct {
		AccountNumber   string `json:"accountNumber"`
		TransactionCode string `json:"transactionCode"`
		TransactionID   uint64 `json:"transactionId"`
		Time            string `json:"time"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, "A100", receipt.AccountNumber)
	assert.Equal(t, "W", receipt.TransactionCode)
	assert.Equal(t, uint64(2), receipt.TransactionID)
	assert.True(t, strings.HasSuffix(receipt.Time, "(MST)"))

	rr, _ = do(t, h, http.MethodGet, "/accounts?accountNumber=A100", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestErrorStatuses(t *testing.T) {
	h := newHandler(t, true)
	do(t, h, http.MethodPost, "/accounts", `{"accountNumber":"A100","firstName":"Eric","lastName":"Idle"}`)

	tests := []struct {
		desc   string
		method string
		target string
		body   string
		want   int
	}{
		{"duplicate account", http.MethodPost, "/accounts", `{"accountNumber":"A100","firstName":"Eric","lastName":"Idle"}`, http.StatusConflict},
		{"missing names", http.MethodPost, "/accounts", `{}`, http.StatusBadRequest},
		{"timezone hours overflow", http.MethodPost, "/accounts", `{"firstName":"Eric","lastName":"Idle","timezone":{"name":"X","offsetHours":2251799813685248}}`, http.StatusBadRequest},
		{"missing account number", http.MethodGet, "/accounts", "", http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/accounts/deposit", `{`, http.StatusBadRequest},
		{"amount below minimum", http.MethodPost, "/accounts/deposit", `{"accountNumber":"A100","amount":"0.001"}`, http.StatusBadRequest},
		{"negative amount", http.MethodPost, "/accounts/withdraw", `{"accountNumber":"A100","amount":"-5"}`, http.StatusBadRequest},
		{"unknown account", http.MethodPost, "/accounts/pay-interest", `{"accountNumber":"nope"}`, http.StatusNotFound},
		{"unknown account lookup", http.MethodGet, "/accounts?accountNumber=nope", "", http.StatusNotFound},
		{"bad confirmation", http.MethodPost, "/confirmations/decode", `{"confirmationCode":"D-A100-notatime-1"}`, http.StatusBadRequest},
		{"negative rate", http.MethodPut, "/interest-rate", `{"rate":"-1"}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "/accounts/deposit", "", http.StatusMethodNotAllowed},
		{"wrong method on rate", http.MethodDelete, "/interest-rate", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			rr, env := do(t, h, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
			assert.False(t, env.Success)
		})
	}
}

func TestInterestRateOverHTTP(t *testing.T) {
	h := newHandler(t, false)

	rr, env := do(t, h, http.MethodPut, "/interest-rate", `{"rate":"1.5"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, env = do(t, h, http.MethodGet, "/interest-rate", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var rate struct {
		Rate string `json:"rate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rate))
	assert.Equal(t, "1.5", rate.Rate)
}

func TestRoutesRequireAuth(t *testing.T) {
	h := newHandler(t, true)

	req := httptest.NewRequest(http.MethodGet, "/interest-rate", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
