package handler

import (
	"net/http"
	"rpbank/common"
	"rpbank/model"
	"rpbank/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(s *service.LoanService) *LoanHandler {
	return &LoanHandler{service: s}
}

// RequestLoan godoc
// @Summary      Request a loan
// @Description  Credits the principal to the caller's card and schedules daily installments of principal / (months * 30).
// @Tags         loans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        loan body model.LoanRequest true "Principal and term in months"
// @Success      201  {object}  model.Loan
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Caller has no account"
// @Failure      409  {object}  common.AppError "A loan is already active"
// @Router       /api/loans [post]
func (h *LoanHandler) RequestLoan(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.LoanRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	loan, err := h.service.IssueLoan(r.Context(), caller.Identity, req.Principal, req.TermMonths)
	if err != nil {
		return serviceError(err, "Could not issue loan")
	}
	common.WriteJSON(w, http.StatusCreated, loan)
	return nil
}

// LoanStatus godoc
// @Summary      Show the caller's loan
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Loan
// @Failure      404  {object}  common.AppError "No active loan"
// @Router       /api/loans/me [get]
func (h *LoanHandler) LoanStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}

	loan, err := h.service.LoanStatus(caller.Identity)
	if err != nil {
		return serviceError(err, "Could not retrieve loan")
	}
	common.WriteJSON(w, http.StatusOK, loan)
	return nil
}

// PayLoan godoc
// @Summary      Repay the caller's loan
// @Description  Debits the card. Paying more than what is left settles the loan and the excess is not returned.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payment body model.AmountRequest true "Amount"
// @Success      200  {object}  model.PaymentResult
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "No active loan"
// @Failure      409  {object}  common.AppError "Insufficient funds"
// @Router       /api/loans/payments [post]
func (h *LoanHandler) PayLoan(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.AmountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	result, err := h.service.PayLoan(r.Context(), caller.Identity, req.Amount)
	if err != nil {
		return serviceError(err, "Could not apply payment")
	}
	common.WriteJSON(w, http.StatusOK, result)
	return nil
}
