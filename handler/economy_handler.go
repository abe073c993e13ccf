package handler

import (
	"net/http"
	"rpbank/common"
	"rpbank/model"
	"rpbank/service"
)

// EconomyHandler serves payroll and the shop.
type EconomyHandler struct {
	payroll *service.PayrollService
	shop    *service.ShopService
}

func NewEconomyHandler(payroll *service.PayrollService, shop *service.ShopService) *EconomyHandler {
	return &EconomyHandler{payroll: payroll, shop: shop}
}

// CollectSalary godoc
// @Summary      Collect salary
// @Description  Pays the best salary among the roles in the caller's token, minus tax, to their card.
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Payslip
// @Failure      404  {object}  common.AppError "Caller has no account"
// @Router       /api/salary [post]
func (h *EconomyHandler) CollectSalary(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}

	slip, err := h.payroll.CollectSalary(r.Context(), caller.Identity, caller.Roles)
	if err != nil {
		return serviceError(err, "Could not pay salary")
	}
	common.WriteJSON(w, http.StatusOK, slip)
	return nil
}

// ListItems godoc
// @Summary      Shop catalog
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  config.ShopItem
// @Router       /api/shop/items [get]
func (h *EconomyHandler) ListItems(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.shop.Catalog())
	return nil
}

// Purchase godoc
// @Summary      Buy an item
// @Tags         economy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        purchase body model.PurchaseRequest true "Item name"
// @Success      201  {object}  model.Purchase
// @Failure      400  {object}  common.AppError "Unknown item"
// @Failure      404  {object}  common.AppError "Caller has no account"
// @Failure      409  {object}  common.AppError "Insufficient funds"
// @Router       /api/shop/purchases [post]
func (h *EconomyHandler) Purchase(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.PurchaseRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	purchase, err := h.shop.Purchase(r.Context(), caller.Identity, req.Item)
	if err != nil {
		return serviceError(err, "Could not complete purchase")
	}
	common.WriteJSON(w, http.StatusCreated, purchase)
	return nil
}

// Inventory godoc
// @Summary      Show the caller's inventory
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int
// @Router       /api/inventory/me [get]
func (h *EconomyHandler) Inventory(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	inventory := h.shop.Inventory(caller.Identity)
	if inventory == nil {
		inventory = model.Inventory{}
	}
	common.WriteJSON(w, http.StatusOK, inventory)
	return nil
}

// InventoryOf godoc
// @Summary      Show another identity's inventory
// @Tags         economy
// @Produce      json
// @Security     BearerAuth
// @Param        identity path string true "Identity"
// @Success      200  {object}  map[string]int
// @Failure      403  {object}  common.AppError "Missing staff capability"
// @Router       /api/inventory/{identity} [get]
func (h *EconomyHandler) InventoryOf(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.shop.Inventory(r.PathValue("identity")))
	return nil
}

// GiveItem godoc
// @Summary      Give items
// @Description  Moves units of an item from the caller's inventory to another identity.
// @Tags         economy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.GiveItemRequest true "Recipient, item and quantity"
// @Success      201  {object}  model.ItemTransfer
// @Failure      400  {object}  common.AppError "Invalid quantity"
// @Failure      409  {object}  common.AppError "Not enough units"
// @Router       /api/inventory/transfers [post]
func (h *EconomyHandler) GiveItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.GiveItemRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transfer, err := h.shop.Give(r.Context(), caller.Identity, req.To, req.Item, req.Quantity)
	if err != nil {
		return serviceError(err, "Could not give items")
	}
	common.WriteJSON(w, http.StatusCreated, transfer)
	return nil
}

// StealItem godoc
// @Summary      Attempt a theft
// @Description  Tries to take one unit of an item from the target. Half of the attempts fail.
// @Tags         economy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        theft body model.StealRequest true "Target and item"
// @Success      200  {object}  model.Theft
// @Failure      409  {object}  common.AppError "Target does not hold the item"
// @Router       /api/inventory/thefts [post]
func (h *EconomyHandler) StealItem(w http.ResponseWriter, r *http.Request) *common.AppError {
	caller, appErr := callerOf(r)
	if appErr != nil {
		return appErr
	}
	var req model.StealRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	theft, err := h.shop.Steal(r.Context(), caller.Identity, req.Target, req.Item)
	if err != nil {
		return serviceError(err, "Could not attempt theft")
	}
	common.WriteJSON(w, http.StatusOK, theft)
	return nil
}
