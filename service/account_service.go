// file: service/account_service.go

package service

import (
	"context"
	"fmt"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/repository"
	"rpbank/store"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AccountService is the account ledger. Every exported method takes the shared
// ledger lock, so mutations and their flushes never interleave with the loan
// engine or the daily sweep.
type AccountService struct {
	mu        *sync.Mutex
	accounts  repository.IAccountRepository
	deletions repository.IDeletionRepository
	economy   config.Economy
	now       func() time.Time
}

func NewAccountService(mu *sync.Mutex, accounts repository.IAccountRepository, deletions repository.IDeletionRepository, economy config.Economy) *AccountService {
	return &AccountService{
		mu:        mu,
		accounts:  accounts,
		deletions: deletions,
		economy:   economy,
		now:       time.Now,
	}
}

// Banks returns the bank registry accounts can be opened in.
func (s *AccountService) Banks() []config.Bank {
	out := make([]config.Bank, len(s.economy.Banks))
	copy(out, s.economy.Banks)
	return out
}

// CreateAccount opens an account for identity with the configured opening balances.
func (s *AccountService) CreateAccount(ctx context.Context, identity, bank, actor string) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"identity": identity,
		"bank":     bank,
		"actor":    actor,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts.Get(identity); exists {
		return nil, ErrAlreadyExists
	}
	if _, ok := s.economy.BankByName(bank); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBank, bank)
	}

	account := &model.Account{
		Identity:    identity,
		Bank:        bank,
		CardBalance: s.economy.OpeningCard,
		CashBalance: s.economy.OpeningCash,
		CreatedAt:   model.NewTimestamp(s.now()),
		CreatedBy:   actor,
	}
	s.accounts.Put(account)
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}

	log.Info("Account created")
	return copyAccount(account), nil
}

// GetAccount returns a snapshot of the identity's account.
func (s *AccountService) GetAccount(identity string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrNotFound
	}
	return copyAccount(account), nil
}

// Transfer debits from's card and credits to's card ("bancario") or cash
// ("efectivo"). Nothing is mutated unless every check passes.
func (s *AccountService) Transfer(ctx context.Context, from, to string, amount int64, channel model.Channel) (*model.Transfer, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from":    from,
		"to":      to,
		"amount":  amount,
		"channel": channel,
	})

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if channel != model.ChannelCard && channel != model.ChannelCash {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.accounts.Get(from)
	if !ok {
		return nil, fmt.Errorf("%w: sender %s", ErrNoAccount, from)
	}
	if sender.CardBalance < amount {
		return nil, ErrInsufficientFunds
	}
	receiver, ok := s.accounts.Get(to)
	if !ok {
		return nil, fmt.Errorf("%w: receiver %s", ErrNoAccount, to)
	}
	if from != to && !receiver.CanCredit(amount) {
		return nil, ErrBalanceOverflow
	}

	sender.CardBalance -= amount
	if channel == model.ChannelCash {
		receiver.CashBalance += amount
	} else {
		receiver.CardBalance += amount
	}

	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}

	log.Info("Transfer completed")
	return &model.Transfer{
		From:            from,
		To:              to,
		Amount:          amount,
		Channel:         channel,
		FromCardBalance: sender.CardBalance,
		CreatedAt:       s.now(),
	}, nil
}

// Adjust is an administrative credit. Authorization is the caller's job.
func (s *AccountService) Adjust(ctx context.Context, identity string, amount int64, channel model.Channel, actor, reason string) (*model.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if channel == model.ChannelCardAlias {
		channel = model.ChannelCard
	}
	if channel != model.ChannelCard && channel != model.ChannelCash {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.creditLocked(ctx, identity, amount, channel)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"identity": identity,
		"amount":   amount,
		"channel":  channel,
		"actor":    actor,
		"reason":   reason,
	}).Warn("Administrative credit applied")
	return account, nil
}

// WithdrawToCash moves amount from the card to the cash balance.
func (s *AccountService) WithdrawToCash(ctx context.Context, identity string, amount int64) (*model.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrNoAccount
	}
	if account.CardBalance < amount {
		return nil, ErrInsufficientFunds
	}

	account.CardBalance -= amount
	account.CashBalance += amount
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{"identity": identity, "amount": amount}).Info("Cash withdrawn")
	return copyAccount(account), nil
}

// Charge debits the card for a purchase or fee.
func (s *AccountService) Charge(ctx context.Context, identity string, amount int64, reason string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.chargeLocked(ctx, identity, amount)
	if err != nil {
		return nil, err
	}
	logger.Log.WithFields(logrus.Fields{
		"identity": identity,
		"amount":   amount,
		"reason":   reason,
	}).Info("Card charged")
	return account, nil
}

// DeleteAccount backs the account up into the deletion log and removes it.
func (s *AccountService) DeleteAccount(ctx context.Context, identity, actor string) (*model.DeletionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	record := model.DeletionRecord{
		ID:          uuid.NewString(),
		Identity:    identity,
		Bank:        account.Bank,
		CardBalance: account.CardBalance,
		CashBalance: account.CashBalance,
		TotalLost:   account.Total(),
		DeletedBy:   actor,
		DeletedOn:   model.DateOf(now),
		Timestamp:   model.NewTimestamp(now),
	}
	if err := s.deletions.Append(record); err != nil {
		return nil, err
	}
	if err := persisted(store.KeyDeletedAccounts, s.deletions.Flush(ctx)); err != nil {
		return nil, err
	}

	s.accounts.Delete(identity)
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"identity":   identity,
		"actor":      actor,
		"total_lost": record.TotalLost,
		"record_id":  record.ID,
	}).Warn("Account deleted")
	return &record, nil
}

// DeletionRecords returns the deletion log, oldest first.
func (s *AccountService) DeletionRecords() []model.DeletionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deletions.List()
}

// RankByNetWorth orders accounts by card+cash descending, ties by identity
// ascending. An empty filter ranks every account; identities without an
// account are skipped.
func (s *AccountService) RankByNetWorth(identities []string) []model.NetWorth {
	s.mu.Lock()
	defer s.mu.Unlock()

	var accounts []*model.Account
	if len(identities) == 0 {
		accounts = s.accounts.All()
	} else {
		seen := make(map[string]bool, len(identities))
		for _, id := range identities {
			if seen[id] {
				continue
			}
			seen[id] = true
			if acc, ok := s.accounts.Get(id); ok {
				accounts = append(accounts, acc)
			}
		}
	}

	ranking := make([]model.NetWorth, 0, len(accounts))
	for _, acc := range accounts {
		ranking = append(ranking, model.NetWorth{
			Identity: acc.Identity,
			Bank:     acc.Bank,
			Card:     acc.CardBalance,
			Cash:     acc.CashBalance,
			Total:    acc.Total(),
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Total != ranking[j].Total {
			return ranking[i].Total > ranking[j].Total
		}
		return ranking[i].Identity < ranking[j].Identity
	})
	return ranking
}

// creditLocked adds amount to the chosen sub-balance, refusing credits that
// would overflow the account. Caller holds s.mu.
func (s *AccountService) creditLocked(ctx context.Context, identity string, amount int64, channel model.Channel) (*model.Account, error) {
	account, ok := s.accounts.Get(identity)
	if !ok {
		return nil, ErrNoAccount
	}
	if !account.CanCredit(amount) {
		return nil, ErrBalanceOverflow
	}
	if channel == model.ChannelCash {
		account.CashBalance += amount
	} else {
		account.CardBalance += amount
	}
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}
	return copyAccount(account), nil
}

// chargeLocked debits amount from the card. Caller holds s.mu.
func (s *AccountService) chargeLocked(ctx context.Context, identity string, amount int64) (*model.Account, error) {
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
	if err := persisted(store.KeyAccounts, s.accounts.Flush(ctx)); err != nil {
		return nil, err
	}
	return copyAccount(account), nil
}

func copyAccount(a *model.Account) *model.Account {
	cp := *a
	return &cp
}
