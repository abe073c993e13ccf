package model

import "math"

// Account is the bank account of one identity. JSON names follow the existing
// cuentas.json layout so older data files keep loading.
type Account struct {
	Identity    string    `json:"identity,omitempty"`
	Bank        string    `json:"banco"`
	CardBalance int64     `json:"tarjeta"`
	CashBalance int64     `json:"efectivo"`
	CreatedAt   Timestamp `json:"fecha_creacion"`
	CreatedBy   string    `json:"creado_por"`
}

// Total is the account's net worth across both sub-balances.
func (a *Account) Total() int64 {
	return a.CardBalance + a.CashBalance
}

// CanCredit reports whether amount can be added without the net worth
// overflowing int64.
func (a *Account) CanCredit(amount int64) bool {
	return amount <= math.MaxInt64-a.Total()
}

// Channel selects which sub-balance a credit lands in.
type Channel string

const (
	ChannelCard Channel = "bancario"
	ChannelCash Channel = "efectivo"
	// ChannelCardAlias is the name administrative credits use for the card.
	ChannelCardAlias Channel = "tarjeta"
)

// NetWorth is one row of the wealth ranking.
type NetWorth struct {
	Identity string `json:"identity"`
	Bank     string `json:"bank"`
	Card     int64  `json:"card"`
	Cash     int64  `json:"cash"`
	Total    int64  `json:"total"`
}
