package handler

import (
	"net/http"
	"rpbank/common"
	"rpbank/model"
	"rpbank/service"
)

// TransactionHandler serves money movements started by the caller.
type TransactionHandler struct {
	service *service.AccountService
}

func NewTransactionHandler(s *service.AccountService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money
// @Description  Debits the caller's card. Channel "bancario" credits the receiver's card, "efectivo" the receiver's cash.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Receiver, amount and channel"
// @Success      201  {object}  model.Transfer
// @Failure      400  {object}  common.AppError "Invalid amount or channel"
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Sender or receiver has no account"
// @Failure      409  {object}  common.AppError "Insufficient funds"
// @Failure      500  {object}  common.AppError
// @Router       /api/transfers [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transfer, err := h.service.Transfer(r.Context(), caller.Identity, req.To, req.Amount, req.Channel)
	if err != nil {
		return serviceError(err, "Could not process transfer")
	}

	common.WriteJSON(w, http.StatusCreated, transfer)
	return nil
}

// CreateWithdrawal godoc
// @Summary      Withdraw to cash
// @Description  Moves money from the caller's card to their cash balance.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        withdrawal body model.AmountRequest true "Amount"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Caller has no account"
// @Failure      409  {object}  common.AppError "Insufficient funds"
// @Router       /api/withdrawals [post]
func (h *TransactionHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.AmountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	account, err := h.service.WithdrawToCash(r.Context(), caller.Identity, req.Amount)
	if err != nil {
		return serviceError(err, "Could not process withdrawal")
	}
	common.WriteJSON(w, http.StatusOK, account)
	return nil
}
