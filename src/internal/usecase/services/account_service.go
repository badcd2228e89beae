package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-account/src/internal/adapter/http/models"
	"github.com/api-sage/bank-account/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-account/src/internal/commons"
	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
	"github.com/shopspring/decimal"
)

const (
	MessageValidationFailed    = "validation failed"
	MessageAccountNotFound     = "Account not found"
	MessageAccountExists       = "Account already exists"
	MessageInvalidConfirmation = "invalid confirmation code"

	accountNumberAttempts = 5
)

type AccountService struct {
	accountRepo      repo_interfaces.AccountRepository
	ledger           *domain.Ledger
	newAccountNumber func() string
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, ledger *domain.Ledger) *AccountService {
	return &AccountService{
		accountRepo:      accountRepo,
		ledger:           ledger,
		newAccountNumber: generateAccountNumber,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := invalidRequest(req.Validate()); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse](MessageValidationFailed, err.Error()), err
	}

	zone, err := toTimeZone(req.Timezone)
	if err != nil {
		logger.Error("account service create account invalid timezone", err, nil)
		return commons.ErrorResponse[models.AccountResponse](MessageValidationFailed, err.Error()), err
	}

	requested := strings.TrimSpace(req.AccountNumber)
	attempts := 1
	if requested == "" {
		attempts = accountNumberAttempts
	}

	var account *domain.Account
	for i := 0; i < attempts; i++ {
		number := requested
		if number == "" {
			number = s.newAccountNumber()
		}

		account, err = domain.NewAccount(s.ledger, number, req.FirstName, req.LastName, zone, req.InitialBalance)
		if err != nil {
			logger.Error("account service create account validation failed", err, nil)
			return commons.ErrorResponse[models.AccountResponse](MessageValidationFailed, err.Error()), err
		}

		err = s.accountRepo.Create(ctx, account)
		if err == nil || !errors.Is(err, domain.ErrAccountExists) {
			break
		}
	}
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
		})
		if errors.Is(err, domain.ErrAccountExists) {
			return commons.ErrorResponse[models.AccountResponse](MessageAccountExists), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	response := mapAccountToResponse(account.Snapshot())

	logger.Info("account service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := invalidRequest(errors.New("accountNumber is required"))
		return commons.ErrorResponse[models.AccountResponse](MessageValidationFailed, err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return accountLookupFailed[models.AccountResponse]("get account", accountNumber, err)
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account.Snapshot())), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := invalidRequest(req.Validate()); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](MessageValidationFailed, err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return accountLookupFailed[models.TransactionResponse]("deposit", accountNumber, err)
	}

	result, err := account.Transact(domain.TransactionKindDeposit, req.Amount)
	if err != nil {
		logger.Error("account service deposit rejected by account", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionResponse](MessageValidationFailed, err.Error()), err
	}

	response := transactionResponse(account.AccountNumber(), result, &req.Amount)
	logTransaction("account service deposit success", response)

	return commons.SuccessResponse("deposit completed successfully", response), nil
}

// Withdraw never fails on insufficient funds: the response carries an "X"
// confirmation code and the balance is unchanged.
func (s *AccountService) Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := invalidRequest(req.Validate()); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse](MessageValidationFailed, err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return accountLookupFailed[models.TransactionResponse]("withdraw", accountNumber, err)
	}

	result, err := account.Transact(domain.TransactionKindWithdraw, req.Amount)
	if err != nil {
		logger.Error("account service withdraw rejected by account", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.TransactionResponse](MessageValidationFailed, err.Error()), err
	}

	response := transactionResponse(account.AccountNumber(), result, &req.Amount)
	if response.Status == statusRejected {
		logger.Warn("account service withdraw rejected for insufficient funds", logger.Fields{
			"accountNumber":    response.AccountNumber,
			"confirmationCode": response.ConfirmationCode,
		})
		return commons.SuccessResponse("withdrawal rejected: insufficient funds", response), nil
	}

	logTransaction("account service withdraw success", response)
	return commons.SuccessResponse("withdrawal completed successfully", response), nil
}

func (s *AccountService) PayInterest(ctx context.Context, req models.PayInterestRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("account service pay interest request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := invalidRequest(req.Validate()); err != nil {
		return commons.ErrorResponse[models.TransactionResponse](MessageValidationFailed, err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return accountLookupFailed[models.TransactionResponse]("pay interest", accountNumber, err)
	}

	result, err := account.Transact(domain.TransactionKindInterest, decimal.Zero)
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("failed to pay interest", err.Error()), err
	}
	response := transactionResponse(account.AccountNumber(), result, nil)
	logTransaction("account service pay interest success", response)

	return commons.SuccessResponse("interest paid successfully", response), nil
}

// DecodeConfirmation renders a confirmation code in the requested zone, or in
// the referenced account's preferred zone when none is given, or in UTC.
func (s *AccountService) DecodeConfirmation(ctx context.Context, req models.DecodeConfirmationRequest) (commons.Response[models.ConfirmationResponse], error) {
	logger.Info("account service decode confirmation request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := invalidRequest(req.Validate()); err != nil {
		return commons.ErrorResponse[models.ConfirmationResponse](MessageValidationFailed, err.Error()), err
	}

	zone, err := toTimeZone(req.Timezone)
	if err != nil {
		return commons.ErrorResponse[models.ConfirmationResponse](MessageValidationFailed, err.Error()), err
	}

	code := strings.TrimSpace(req.ConfirmationCode)
	receipt, err := domain.DecodeConfirmation(code, zone)
	if err != nil {
		logger.Error("account service decode confirmation failed", err, nil)
		return commons.ErrorResponse[models.ConfirmationResponse](MessageInvalidConfirmation, err.Error()), err
	}

	if req.Timezone == nil {
		if account, lookupErr := s.accountRepo.GetByAccountNumber(ctx, receipt.AccountNumber); lookupErr == nil {
			receipt, err = domain.DecodeConfirmation(code, account.Timezone())
			if err != nil {
				return commons.ErrorResponse[models.ConfirmationResponse](MessageInvalidConfirmation, err.Error()), err
			}
		}
	}

	response := MapReceiptToResponse(receipt)

	logger.Info("account service decode confirmation success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"transactionId": response.TransactionID,
	})

	return commons.SuccessResponse("confirmation decoded successfully", response), nil
}

// invalidRequest lifts a request-shape error into the domain validation
// taxonomy so transports can classify it.
func invalidRequest(err error) error {
	if err == nil {
		return nil
	}
	return &domain.ValidationError{Message: err.Error()}
}

func accountLookupFailed[T any](operation string, accountNumber string, err error) (commons.Response[T], error) {
	logger.Error("account service "+operation+" account lookup failed", err, logger.Fields{
		"accountNumber": accountNumber,
	})
	if errors.Is(err, domain.ErrRecordNotFound) {
		return commons.ErrorResponse[T](MessageAccountNotFound), err
	}
	return commons.ErrorResponse[T]("failed to "+operation, "Unable to process request right now"), err
}

const (
	statusAccepted = "ACCEPTED"
	statusRejected = "REJECTED"
)

func transactionResponse(accountNumber string, result domain.TransactionResult, amount *decimal.Decimal) models.TransactionResponse {
	status := statusAccepted
	if result.Kind == domain.TransactionKindRejected {
		status = statusRejected
	}

	return models.TransactionResponse{
		AccountNumber:    accountNumber,
		ConfirmationCode: result.ConfirmationCode,
		TransactionCode:  string(result.Kind),
		Status:           status,
		Amount:           amount,
		Balance:          result.Balance,
	}
}

func logTransaction(message string, response models.TransactionResponse) {
	logger.Info(message, logger.Fields{
		"accountNumber":    response.AccountNumber,
		"confirmationCode": response.ConfirmationCode,
		"balance":          response.Balance,
	})
}

func toTimeZone(req *models.TimeZoneRequest) (domain.TimeZone, error) {
	if req == nil {
		return domain.TimeZone{}, nil
	}
	return domain.NewTimeZone(req.Name, req.OffsetHours, req.OffsetMinutes)
}

func mapAccountToResponse(snapshot domain.AccountSnapshot) models.AccountResponse {
	return models.AccountResponse{
		AccountNumber: snapshot.AccountNumber,
		FirstName:     snapshot.FirstName,
		LastName:      snapshot.LastName,
		FullName:      snapshot.FullName,
		Timezone:      MapTimeZoneToResponse(snapshot.Timezone),
		Balance:       snapshot.Balance,
		CreatedAt:     snapshot.CreatedAt.Format(time.RFC3339),
	}
}

func MapTimeZoneToResponse(zone domain.TimeZone) models.TimeZoneResponse {
	offset := zone.Offset()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	return models.TimeZoneResponse{
		Name:          zone.Name(),
		OffsetHours:   zone.OffsetHours(),
		OffsetMinutes: zone.OffsetMinutes(),
		Offset:        fmt.Sprintf("%s%02d:%02d", sign, int(offset.Hours()), int(offset.Minutes())%60),
	}
}

func MapReceiptToResponse(receipt domain.Receipt) models.ConfirmationResponse {
	return models.ConfirmationResponse{
		AccountNumber:   receipt.AccountNumber,
		TransactionCode: string(receipt.Kind),
		TransactionKind: receipt.Kind.Description(),
		TransactionID:   receipt.TransactionID,
		TimeUTC:         receipt.TimeUTC.Format("2006-01-02T15:04:05"),
		Time:            receipt.TimeDisplay,
	}
}

func generateAccountNumber() string {
	return fmt.Sprintf("%010d", time.Now().UnixNano()%10_000_000_000)
}
