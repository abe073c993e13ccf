// file: model/request.go

package model

// CreateAccountRequest opens an account for Identity at Bank.
type CreateAccountRequest struct {
	Identity string `json:"identity" validate:"required,max=64"`
	Bank     string `json:"bank" validate:"required"`
}

// TransferRequest moves money from the caller's card to another account.
type TransferRequest struct {
	To      string  `json:"to" validate:"required,max=64"`
	Amount  int64   `json:"amount" validate:"required,gt=0"`
	Channel Channel `json:"channel" validate:"required,oneof=bancario efectivo"`
}

// AdjustRequest is an administrative credit.
type AdjustRequest struct {
	Amount  int64   `json:"amount" validate:"required,gt=0"`
	Channel Channel `json:"channel" validate:"required,oneof=tarjeta bancario efectivo"`
	Reason  string  `json:"reason" validate:"required,max=300"`
}

type AmountRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type LoanRequest struct {
	Principal  int64 `json:"principal" validate:"required,gt=0"`
	TermMonths int   `json:"term_months" validate:"required,gt=0,lte=120"`
}

type PurchaseRequest struct {
	Item string `json:"item" validate:"required"`
}

// GiveItemRequest hands Quantity units of Item to another identity.
type GiveItemRequest struct {
	To       string `json:"to" validate:"required,max=64"`
	Item     string `json:"item" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type StealRequest struct {
	Target string `json:"target" validate:"required,max=64"`
	Item   string `json:"item" validate:"required"`
}
