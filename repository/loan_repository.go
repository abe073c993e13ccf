package repository

import (
	"context"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/store"
	"sort"
)

// ILoanRepository defines the contract for the loans document.
type ILoanRepository interface {
	Get(identity string) (*model.Loan, bool)
	Put(loan *model.Loan)
	All() []*model.Loan
	Flush(ctx context.Context) error
}

// LoanRepository holds one loan record per identity, settled ones included.
type LoanRepository struct {
	store store.DocumentStore
	loans map[string]*model.Loan
}

func NewLoanRepository(ctx context.Context, s store.DocumentStore) (*LoanRepository, error) {
	loans := make(map[string]*model.Loan)
	if err := s.Load(ctx, store.KeyLoans, &loans); err != nil {
		return nil, err
	}
	for id, loan := range loans {
		if loan == nil {
			delete(loans, id)
			continue
		}
		loan.Identity = id
	}
	logger.Log.WithField("count", len(loans)).Info("Loans loaded")
	return &LoanRepository{store: s, loans: loans}, nil
}

func (r *LoanRepository) Get(identity string) (*model.Loan, bool) {
	loan, ok := r.loans[identity]
	return loan, ok
}

// Put replaces the identity's loan record.
func (r *LoanRepository) Put(loan *model.Loan) {
	r.loans[loan.Identity] = loan
}

// All returns every loan ordered by identity.
func (r *LoanRepository) All() []*model.Loan {
	out := make([]*model.Loan, 0, len(r.loans))
	for _, loan := range r.loans {
		out = append(out, loan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

func (r *LoanRepository) Flush(ctx context.Context) error {
	if err := r.store.Flush(ctx, store.KeyLoans, r.loans); err != nil {
		logger.Log.WithField("key", store.KeyLoans).WithError(err).Error("Failed to flush loans")
		return err
	}
	return nil
}
