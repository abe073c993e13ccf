// file: service/loan_service.go

package service

import (
	"context"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/repository"
	"rpbank/store"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LoanService issues and collects loans. It shares the ledger lock with
// AccountService because every loan operation also moves card money.
type LoanService struct {
	mu       *sync.Mutex
	accounts repository.IAccountRepository
	loans    repository.ILoanRepository
	now      func() time.Time
}

func NewLoanService(mu *sync.Mutex, accounts repository.IAccountRepository, loans repository.ILoanRepository) *LoanService {
	return &LoanService{
		mu:       mu,
		accounts: accounts,
		loans:    loans,
		now:      time.Now,
	}
}

// IssueLoan grants principal to identity, repayable over termMonths, and
// credits it to the card.
func (s *LoanService) IssueLoan(ctx context.Context, identity string, principal int64, termMonths int) (*model.Loan, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"identity":    identity,
		"principal":   principal,
		"term_months": termMonths,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrAccountRequired
	}
	if principal <= 0 || termMonths <= 0 {
		return nil, ErrInvalidAmount
	}
	if existing, ok := s.loans.Get(identity); ok && existing.Active() {
		return nil, ErrLoanAlreadyActive
	}
	if !account.CanCredit(principal) {
		return nil, ErrBalanceOverflow
	}

	loan := model.NewLoan(identity, principal, termMonths, model.DateOf(s.now()))
	s.loans.Put(loan)
	account.CardBalance += principal

	if err := persisted(store.KeyLoans, s.loans.Flush(ctx)); err != nil {
		return nil, err
	}
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}

	log.WithField("daily_installment", loan.DailyInstallment).Info("Loan issued")
	return copyLoan(loan), nil
}

// PayLoan applies a manual repayment from the card. Paying more than what is
// left settles the loan; the excess is kept, not refunded.
func (s *LoanService) PayLoan(ctx context.Context, identity string, amount int64) (*model.PaymentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans.Get(identity)
	if !ok || !loan.Active() {
		return nil, ErrNoActiveLoan
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrNoAccount
	}
	if account.CardBalance < amount {
		return nil, ErrInsufficientFunds
	}

	account.CardBalance -= amount
	remaining := loan.Reduce(amount)

	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}
	if err := persisted(store.KeyLoans, s.loans.Flush(ctx)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"identity":  identity,
		"amount":    amount,
		"remaining": remaining,
	}).Info("Loan payment applied")

	return &model.PaymentResult{
		Paid:        amount,
		Remaining:   remaining,
		Settled:     remaining == 0,
		CardBalance: account.CardBalance,
	}, nil
}

// LoanStatus returns the identity's active loan.
func (s *LoanService) LoanStatus(identity string) (*model.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan, ok := s.loans.Get(identity)
	if !ok || !loan.Active() {
		return nil, ErrNoActiveLoan
	}
	return copyLoan(loan), nil
}

// ApplyDailyInstallments charges today's installment on every active loan
// that has not been attempted today. When the card cannot cover it the day is
// still marked as attempted and nothing is charged; missed days are never
// caught up. It returns one event per installment actually charged.
func (s *LoanService) ApplyDailyInstallments(ctx context.Context, today model.Date) ([]model.InstallmentEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []model.InstallmentEvent
	for _, loan := range s.loans.All() {
		if !loan.Active() || loan.ChargedOn(today) {
			continue
		}

		day := today
		installment := loan.Installment()
		log := logger.Log.WithFields(logrus.Fields{
			"identity":    loan.Identity,
			"installment": installment,
			"date":        today,
		})

		account, ok := s.accounts.Get(loan.Identity)
		if !ok || account.CardBalance < installment {
			loan.LastInstallment = &day
			if err := persisted(store.KeyLoans, s.loans.Flush(ctx)); err != nil {
				return events, err
			}
			log.Info("Installment skipped, insufficient funds")
			continue
		}

		account.CardBalance -= installment
		remaining := loan.Reduce(installment)
		loan.LastInstallment = &day

		if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
			return events, err
		}
		if err := persisted(store.KeyLoans, s.loans.Flush(ctx)); err != nil {
			return events, err
		}

		log.WithField("remaining", remaining).Info("Installment applied")
		events = append(events, model.InstallmentEvent{
			Identity:    loan.Identity,
			Amount:      installment,
			Remaining:   remaining,
			CardBalance: account.CardBalance,
			Settled:     remaining == 0,
			Date:        today,
			AppliedAt:   s.now(),
		})
	}
	return events, nil
}

func copyLoan(l *model.Loan) *model.Loan {
	cp := *l
	if l.LastInstallment != nil {
		d := *l.LastInstallment
		cp.LastInstallment = &d
	}
	return &cp
}
