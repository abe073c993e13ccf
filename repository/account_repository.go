package repository

import (
	"context"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/store"
	"sort"

	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for the accounts document.
// Returned accounts are the live in-memory records; callers serialise access.
type IAccountRepository interface {
	Get(identity string) (*model.Account, bool)
	Put(account *model.Account)
	Delete(identity string)
	All() []*model.Account
	Flush(ctx context.Context) error
}

// AccountRepository holds the accounts document keyed by identity.
type AccountRepository struct {
	store    store.DocumentStore
	accounts map[string]*model.Account
}

// NewAccountRepository loads the accounts document from s.
func NewAccountRepository(ctx context.Context, s store.DocumentStore) (*AccountRepository, error) {
	accounts := make(map[string]*model.Account)
	if err := s.Load(ctx, store.KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	for id, acc := range accounts {
		if acc == nil {
			delete(accounts, id)
			continue
		}
		acc.Identity = id
	}
	logger.Log.WithField("count", len(accounts)).Info("Accounts loaded")
	return &AccountRepository{store: s, accounts: accounts}, nil
}

func (r *AccountRepository) Get(identity string) (*model.Account, bool) {
	acc, ok := r.accounts[identity]
	return acc, ok
}

func (r *AccountRepository) Put(account *model.Account) {
	r.accounts[account.Identity] = account
}

func (r *AccountRepository) Delete(identity string) {
	delete(r.accounts, identity)
}

// All returns every account ordered by identity.
func (r *AccountRepository) All() []*model.Account {
	out := make([]*model.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}

func (r *AccountRepository) Flush(ctx context.Context) error {
	if err := r.store.Flush(ctx, store.KeyAccounts, r.accounts); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"key":   store.KeyAccounts,
			"count": len(r.accounts),
		}).WithError(err).Error("Failed to flush accounts")
		return err
	}
	return nil
}
