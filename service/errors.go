package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidChannel    = errors.New("unknown transfer channel")
	ErrNoAccount         = errors.New("account not found")
	ErrAccountRequired   = errors.New("a bank account is required")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyExists     = errors.New("account already exists")
	ErrLoanAlreadyActive = errors.New("a loan is already active")
	ErrNoActiveLoan      = errors.New("no active loan")
	ErrNotFound          = errors.New("not found")
	ErrUnknownBank       = errors.New("unknown bank")
	ErrUnknownItem       = errors.New("item not sold in the shop")
	ErrBalanceOverflow   = errors.New("amount would exceed the maximum balance")
	ErrNotEnoughItems    = errors.New("not enough units of the item")

	// ErrPersistence means the in-memory change was applied but could not be
	// written to the store; memory and disk now disagree.
	ErrPersistence = errors.New("persistence failure")
)

// persisted wraps a flush error of the document key in ErrPersistence.
func persisted(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, key, err)
}
