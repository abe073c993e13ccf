package model

import (
	"time"
)

// Transfer is the result of moving money between two accounts.
type Transfer struct {
	From            string    `json:"from"`
	To              string    `json:"to"`
	Amount          int64     `json:"amount"`
	Channel         Channel   `json:"channel"`
	FromCardBalance int64     `json:"from_card_balance"`
	CreatedAt       time.Time `json:"created_at"`
}
