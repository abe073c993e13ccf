package handler

import (
	"errors"
	"net/http"
	"rpbank/common"
	"rpbank/service"
)

// serviceError maps a ledger error to its HTTP status. Unknown errors become a
// 500 carrying fallback as the message.
func serviceError(err error, fallback string) *common.AppError {
	switch {
	case errors.Is(err, service.ErrPersistence):
		return common.NewAppError(http.StatusInternalServerError, "Could not save changes", err)
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidChannel),
		errors.Is(err, service.ErrUnknownBank),
		errors.Is(err, service.ErrUnknownItem),
		errors.Is(err, service.ErrBalanceOverflow):
		return common.NewAppError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrNoAccount),
		errors.Is(err, service.ErrAccountRequired),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrNoActiveLoan):
		return common.NewAppError(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrAlreadyExists),
		errors.Is(err, service.ErrLoanAlreadyActive),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrNotEnoughItems):
		return common.NewAppError(http.StatusConflict, err.Error(), err)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
