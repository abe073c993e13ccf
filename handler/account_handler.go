package handler

import (
	"net/http"
	"rpbank/common"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/service"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultRankingLimit = 10

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListBanks godoc
// @Summary      List banks
// @Description  Returns the banks an account can be opened in.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   config.Bank
// @Failure      401  {object}  common.AppError
// @Router       /api/banks [get]
func (h *AccountHandler) ListBanks(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.service.Banks())
	return nil
}

// CreateAccount godoc
// @Summary      Open an account
// @Description  Opens an account for an identity with the configured opening balances. Requires the staff capability.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.CreateAccountRequest true "Identity and bank"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError "Invalid body or unknown bank"
// @Failure      403  {object}  common.AppError "Missing staff capability"
// @Failure      409  {object}  common.AppError "Account already exists"
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	logger.Log.WithFields(logrus.Fields{
		"identity": req.Identity,
		"bank":     req.Bank,
		"actor":    caller.Identity,
	}).Info("Create account request received")

	account, err := h.service.CreateAccount(r.Context(), req.Identity, req.Bank, caller.Identity)
	if err != nil {
		return serviceError(err, "Could not create account")
	}

	common.WriteJSON(w, http.StatusCreated, account)
	return nil
}

// GetAccount godoc
// @Summary      Show an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        identity path string true "Account identity"
// @Success      200  {object}  model.Account
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{identity} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	account, err := h.service.GetAccount(r.PathValue("identity"))
	if err != nil {
		return serviceError(err, "Could not retrieve account")
	}
	common.WriteJSON(w, http.StatusOK, account)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Backs the account up into the deletion log, then removes it. Requires the staff capability.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        identity path string true "Account identity"
// @Success      200  {object}  model.DeletionRecord
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts/{identity} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}

	record, err := h.service.DeleteAccount(r.Context(), r.PathValue("identity"), caller.Identity)
	if err != nil {
		return serviceError(err, "Could not delete account")
	}
	common.WriteJSON(w, http.StatusOK, record)
	return nil
}

// AdjustBalance godoc
// @Summary      Credit an account
// @Description  Administrative credit to the card ("tarjeta" or "bancario") or cash ("efectivo"). Requires the staff or economy capability.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        identity path string true "Account identity"
// @Param        adjustment body model.AdjustRequest true "Amount, channel and reason"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{identity}/adjustments [post]
func (h *AccountHandler) AdjustBalance(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.AdjustRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	account, err := h.service.Adjust(r.Context(), r.PathValue("identity"), req.Amount, req.Channel, caller.Identity, req.Reason)
	if err != nil {
		return serviceError(err, "Could not adjust balance")
	}
	common.WriteJSON(w, http.StatusOK, account)
	return nil
}

// Ranking godoc
// @Summary      Wealth ranking
// @Description  Accounts ordered by card plus cash. Optionally restricted to a comma separated list of identities.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        limit      query int    false "Maximum rows (default 10)"
// @Param        identities query string false "Comma separated identities"
// @Success      200  {array}   model.NetWorth
// @Failure      400  {object}  common.AppError "Invalid limit"
// @Router       /api/ranking [get]
func (h *AccountHandler) Ranking(w http.ResponseWriter, r *http.Request) *common.AppError {
	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return common.NewAppError(http.StatusBadRequest, "Invalid limit", err)
		}
		limit = n
	}

	var identities []string
	if raw := r.URL.Query().Get("identities"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				identities = append(identities, id)
			}
		}
	}

	ranking := h.service.RankByNetWorth(identities)
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	common.WriteJSON(w, http.StatusOK, ranking)
	return nil
}
