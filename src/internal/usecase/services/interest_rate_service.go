package services

import (
	"context"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
)

type InterestRateService struct {
	rate *domain.InterestRate
}

func NewInterestRateService(rate *domain.InterestRate) *InterestRateService {
	return &InterestRateService{rate: rate}
}

func (s *InterestRateService) GetInterestRate(_ context.Context) (commons.Response[models.InterestRateResponse], error) {
	return commons.SuccessResponse("interest rate fetched successfully", models.InterestRateResponse{
		Rate: s.rate.Get(),
	}), nil
}

// SetInterestRate replaces the rate for every account sharing the ledger.
func (s *InterestRateService) SetInterestRate(_ context.Context, req models.SetInterestRateRequest) (commons.Response[models.InterestRateResponse], error) {
	logger.Info("interest rate service set rate request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := invalidRequest(req.Validate()); err != nil {
		logger.Error("interest rate service set rate validation failed", err, nil)
		return commons.ErrorResponse[models.InterestRateResponse](MessageValidationFailed, err.Error()), err
	}

	previous := s.rate.Get()
	if err := s.rate.Set(*req.Rate); err != nil {
		logger.Error("interest rate service set rate rejected", err, nil)
		return commons.ErrorResponse[models.InterestRateResponse](MessageValidationFailed, err.Error()), err
	}

	logger.Info("interest rate service set rate success", logger.Fields{
		"previousRate": previous,
		"rate":         req.Rate,
	})

	return commons.SuccessResponse("interest rate updated successfully", models.InterestRateResponse{
		Rate: *req.Rate,
	}), nil
}
