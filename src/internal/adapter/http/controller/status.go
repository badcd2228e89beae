package controller

import (
	"errors"
	"net/http"

	"github.com/api-sage/bank-account/src/internal/domain"
)

func statusFor(err error) int {
	switch {
	case domain.IsValidationError(err), domain.IsFormatError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
