package router

import (
	"net/http"
	_ "rpbank/docs"
	"rpbank/handler"
	"rpbank/model"
	"rpbank/service"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers the router dispatches to.
type Handlers struct {
	Accounts     *handler.AccountHandler
	Transactions *handler.TransactionHandler
	Loans        *handler.LoanHandler
	Economy      *handler.EconomyHandler
}

func NewRouter(auth *service.AuthService, h Handlers) http.Handler {
	mux := http.NewServeMux()

	authed := handler.AuthMiddleware(auth)
	staff := handler.RequireCapability(model.CapabilityStaff)
	economy := handler.RequireCapability(model.CapabilityStaff, model.CapabilityEconomy)

	wrap := handler.ErrorHandlingMiddleware
	user := func(fn http.HandlerFunc) http.Handler { return authed(fn) }
	withCap := func(policy func(http.Handler) http.Handler, fn http.HandlerFunc) http.Handler {
		return authed(policy(fn))
	}

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Handle("GET /api/banks", user(wrap(h.Accounts.ListBanks)))
	mux.Handle("POST /api/accounts", withCap(staff, wrap(h.Accounts.CreateAccount)))
	mux.Handle("GET /api/accounts/{identity}", user(wrap(h.Accounts.GetAccount)))
	mux.Handle("DELETE /api/accounts/{identity}", withCap(staff, wrap(h.Accounts.DeleteAccount)))
	mux.Handle("POST /api/accounts/{identity}/adjustments", withCap(economy, wrap(h.Accounts.AdjustBalance)))
	mux.Handle("GET /api/ranking", user(wrap(h.Accounts.Ranking)))

	mux.Handle("POST /api/transfers", user(wrap(h.Transactions.CreateTransfer)))
	mux.Handle("POST /api/withdrawals", user(wrap(h.Transactions.CreateWithdrawal)))

	mux.Handle("POST /api/loans", user(wrap(h.Loans.RequestLoan)))
	mux.Handle("GET /api/loans/me", user(wrap(h.Loans.LoanStatus)))
	mux.Handle("POST /api/loans/payments", user(wrap(h.Loans.PayLoan)))

	mux.Handle("POST /api/salary", user(wrap(h.Economy.CollectSalary)))
	mux.Handle("GET /api/shop/items", user(wrap(h.Economy.ListItems)))
	mux.Handle("POST /api/shop/purchases", user(wrap(h.Economy.Purchase)))
	mux.Handle("GET /api/inventory/me", user(wrap(h.Economy.Inventory)))
	mux.Handle("GET /api/inventory/{identity}", withCap(staff, wrap(h.Economy.InventoryOf)))
	mux.Handle("POST /api/inventory/transfers", user(wrap(h.Economy.GiveItem)))
	mux.Handle("POST /api/inventory/thefts", user(wrap(h.Economy.StealItem)))

	return mux
}
