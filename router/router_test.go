// file: router/router_test.go

package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"rpbank/app"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/notify"
	"rpbank/store"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func testConfig() config.Config {
	var cfg config.Config
	cfg.JWT.SecretKey = "router-test-secret"
	cfg.Economy = config.Economy{
		OpeningCard:   1200,
		DefaultSalary: 1200,
		TaxRate:       0.065,
		Banks:         []config.Bank{{Name: "BBVA"}, {Name: "Bankinter"}},
		Shop:          []config.ShopItem{{Name: "Linterna", Price: 50}},
	}
	cfg.Scheduler.Spec = "@daily"
	cfg.Scheduler.Timezone = "UTC"
	return cfg
}

type testApp struct {
	*app.App
	store *store.MemoryStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	s := store.NewMemoryStore()
	a, err := app.New(context.Background(), testConfig(), s, notify.LogNotifier{})
	require.NoError(t, err)
	return &testApp{App: a, store: s}
}

func (a *testApp) token(t *testing.T, identity string, caps ...model.Capability) string {
	t.Helper()
	token, err := a.Auth.GenerateToken(identity, caps, []string{"medic"}, time.Hour)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) openAccount(t *testing.T, identity string) {
	t.Helper()
	staff := a.token(t, "staff-1", model.CapabilityStaff)
	rr := a.do(t, http.MethodPost, "/api/accounts", staff, `{"identity":"`+identity+`","bank":"BBVA"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestHealthCheck_Integration(t *testing.T) {
	a := newTestApp(t)
	rr := a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestSwagger_Integration(t *testing.T) {
	a := newTestApp(t)
	rr := a.do(t, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/transfers")
}

func TestAuthRequired_Integration(t *testing.T) {
	a := newTestApp(t)
	rr := a.do(t, http.MethodGet, "/api/banks", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = a.do(t, http.MethodGet, "/api/banks", a.token(t, "U1"), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	banks := decode[[]config.Bank](t, rr)
	assert.Len(t, banks, 2)
}

func TestCreateAccount_Integration(t *testing.T) {
	a := newTestApp(t)
	user := a.token(t, "U1")
	staff := a.token(t, "staff-1", model.CapabilityStaff)

	t.Run("requires staff", func(t *testing.T) {
		rr := a.do(t, http.MethodPost, "/api/accounts", user, `{"identity":"U1","bank":"BBVA"}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		rr := a.do(t, http.MethodPost, "/api/accounts", staff, `{"identity":"U1","bank":"BBVA"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
		acc := decode[model.Account](t, rr)
		assert.Equal(t, int64(1200), acc.CardBalance)
		assert.Equal(t, "staff-1", acc.CreatedBy)
	})

	t.Run("duplicate", func(t *testing.T) {
		rr := a.do(t, http.MethodPost, "/api/accounts", staff, `{"identity":"U1","bank":"BBVA"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("unknown bank", func(t *testing.T) {
		rr := a.do(t, http.MethodPost, "/api/accounts", staff, `{"identity":"U2","bank":"Nowhere"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("get", func(t *testing.T) {
		rr := a.do(t, http.MethodGet, "/api/accounts/U1", user, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		rr = a.do(t, http.MethodGet, "/api/accounts/ghost", user, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// Card 1200, withdraw 300 → card 900, cash 300.
func TestWithdrawal_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	user := a.token(t, "U1")

	rr := a.do(t, http.MethodPost, "/api/withdrawals", user, `{"amount":300}`)
	require.Equal(t, http.StatusOK, rr.Code)
	acc := decode[model.Account](t, rr)
	assert.Equal(t, int64(900), acc.CardBalance)
	assert.Equal(t, int64(300), acc.CashBalance)

	rr = a.do(t, http.MethodPost, "/api/withdrawals", user, `{"amount":5000}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = a.do(t, http.MethodPost, "/api/withdrawals", user, `{"amount":-1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTransfer_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "A")
	a.openAccount(t, "B")
	sender := a.token(t, "A")

	rr := a.do(t, http.MethodPost, "/api/transfers", sender, `{"to":"B","amount":200,"channel":"efectivo"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	tr := decode[model.Transfer](t, rr)
	assert.Equal(t, "A", tr.From)
	assert.Equal(t, int64(1000), tr.FromCardBalance)

	rr = a.do(t, http.MethodGet, "/api/accounts/B", sender, "")
	acc := decode[model.Account](t, rr)
	assert.Equal(t, int64(200), acc.CashBalance)

	rr = a.do(t, http.MethodPost, "/api/transfers", sender, `{"to":"ghost","amount":10,"channel":"bancario"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = a.do(t, http.MethodPost, "/api/transfers", sender, `{"to":"B","amount":10,"channel":"bizum"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	rr = a.do(t, http.MethodPost, "/api/transfers", sender, `{"to":"B","amount":100000,"channel":"bancario"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAdjustAndDelete_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	economy := a.token(t, "eco-1", model.CapabilityEconomy)
	staff := a.token(t, "staff-1", model.CapabilityStaff)

	rr := a.do(t, http.MethodPost, "/api/accounts/U1/adjustments", economy, `{"amount":800,"channel":"tarjeta","reason":"event prize"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2000), decode[model.Account](t, rr).CardBalance)

	rr = a.do(t, http.MethodDelete, "/api/accounts/U1", economy, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = a.do(t, http.MethodDelete, "/api/accounts/U1", staff, "")
	require.Equal(t, http.StatusOK, rr.Code)
	record := decode[model.DeletionRecord](t, rr)
	assert.Equal(t, int64(2000), record.TotalLost)
	assert.Equal(t, "staff-1", record.DeletedBy)

	rr = a.do(t, http.MethodDelete, "/api/accounts/U1", staff, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRanking_Integration(t *testing.T) {
	a := newTestApp(t)
	for _, id := range []string{"A", "B", "C"} {
		a.openAccount(t, id)
	}
	rr := a.do(t, http.MethodPost, "/api/transfers", a.token(t, "C"), `{"to":"B","amount":100,"channel":"bancario"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	user := a.token(t, "A")

	rr = a.do(t, http.MethodGet, "/api/ranking?limit=2", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	ranking := decode[[]model.NetWorth](t, rr)
	require.Len(t, ranking, 2)
	assert.Equal(t, "B", ranking[0].Identity)
	assert.Equal(t, "A", ranking[1].Identity)

	rr = a.do(t, http.MethodGet, "/api/ranking?identities=C,A", user, "")
	ranking = decode[[]model.NetWorth](t, rr)
	require.Len(t, ranking, 2)
	assert.Equal(t, "A", ranking[0].Identity)

	rr = a.do(t, http.MethodGet, "/api/ranking?limit=zero", user, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Loan of 3000 over 1 month, one sweep, then full repayment.
func TestLoanLifecycle_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	user := a.token(t, "U1")

	rr := a.do(t, http.MethodPost, "/api/loans", user, `{"principal":3000,"term_months":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	loan := decode[model.Loan](t, rr)
	assert.Equal(t, int64(100), loan.DailyInstallment)

	rr = a.do(t, http.MethodPost, "/api/loans", user, `{"principal":500,"term_months":1}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	applied, err := a.Scheduler.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	applied, err = a.Scheduler.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	rr = a.do(t, http.MethodGet, "/api/loans/me", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(2900), decode[model.Loan](t, rr).Remaining)

	rr = a.do(t, http.MethodPost, "/api/loans/payments", user, `{"amount":2900}`)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[model.PaymentResult](t, rr)
	assert.True(t, result.Settled)
	assert.Equal(t, int64(1200), result.CardBalance)

	rr = a.do(t, http.MethodGet, "/api/loans/me", user, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = a.do(t, http.MethodPost, "/api/loans/payments", user, `{"amount":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoanWithoutAccount_Integration(t *testing.T) {
	a := newTestApp(t)
	rr := a.do(t, http.MethodPost, "/api/loans", a.token(t, "ghost"), `{"principal":3000,"term_months":1}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEconomy_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	user := a.token(t, "U1")

	rr := a.do(t, http.MethodPost, "/api/salary", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	slip := decode[model.Payslip](t, rr)
	assert.Equal(t, int64(1122), slip.Net)
	assert.Equal(t, int64(2322), slip.CardBalance)

	rr = a.do(t, http.MethodGet, "/api/shop/items", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"name":"Linterna","price":50}]`, rr.Body.String())

	rr = a.do(t, http.MethodPost, "/api/shop/purchases", user, `{"item":"Linterna"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, int64(2272), decode[model.Purchase](t, rr).CardBalance)

	rr = a.do(t, http.MethodPost, "/api/shop/purchases", user, `{"item":"Tanque"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(t, http.MethodGet, "/api/inventory/me", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Linterna":1}`, rr.Body.String())

	rr = a.do(t, http.MethodGet, "/api/inventory/me", a.token(t, "nobody"), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestInventory_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	user := a.token(t, "U1")

	rr := a.do(t, http.MethodPost, "/api/shop/purchases", user, `{"item":"Linterna"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = a.do(t, http.MethodPost, "/api/inventory/transfers", user, `{"to":"U2","item":"Linterna","quantity":2}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = a.do(t, http.MethodPost, "/api/inventory/transfers", user, `{"to":"U2","item":"Linterna","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(t, http.MethodPost, "/api/inventory/transfers", user, `{"to":"U2","item":"Linterna","quantity":1}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	transfer := decode[model.ItemTransfer](t, rr)
	assert.Equal(t, 0, transfer.Left)

	rr = a.do(t, http.MethodGet, "/api/inventory/U2", user, "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	rr = a.do(t, http.MethodGet, "/api/inventory/U2", a.token(t, "mod", model.CapabilityStaff), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"Linterna":1}`, rr.Body.String())

	rr = a.do(t, http.MethodGet, "/api/inventory/me", user, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())

	rr = a.do(t, http.MethodPost, "/api/inventory/thefts", user, `{"target":"U2","item":"Palanca"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAdjustOverflow_Integration(t *testing.T) {
	a := newTestApp(t)
	a.openAccount(t, "U1")
	staff := a.token(t, "mod", model.CapabilityEconomy)

	rr := a.do(t, http.MethodPost, "/api/accounts/U1/adjustments", staff,
		`{"amount":9223372036854775000,"channel":"efectivo","reason":"bonus"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(t, http.MethodGet, "/api/accounts/U1", a.token(t, "U1"), "")
	require.Equal(t, http.StatusOK, rr.Code)
	acc := decode[model.Account](t, rr)
	assert.Equal(t, int64(1200), acc.CardBalance)
	assert.Equal(t, int64(0), acc.CashBalance)
}
