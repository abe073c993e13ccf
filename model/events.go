package model

import "time"

// InstallmentEvent describes one automatic loan installment that was applied.
type InstallmentEvent struct {
	Identity    string    `json:"identity"`
	Amount      int64     `json:"amount"`
	Remaining   int64     `json:"remaining"`
	CardBalance int64     `json:"card_balance"`
	Settled     bool      `json:"settled"`
	Date        Date      `json:"date"`
	AppliedAt   time.Time `json:"applied_at"`
}
