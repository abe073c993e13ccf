package service

import (
	"context"
	"math"
	"rpbank/config"
	"rpbank/logger"
	"rpbank/model"

	"github.com/sirupsen/logrus"
)

// PayrollService pays salaries by the caller's best-paid role, net of tax.
type PayrollService struct {
	ledger  *AccountService
	economy config.Economy
}

func NewPayrollService(ledger *AccountService, economy config.Economy) *PayrollService {
	return &PayrollService{ledger: ledger, economy: economy}
}

// Payslip computes the salary for roleIDs without paying it. The default
// salary is a floor: a role only counts when it pays more.
func (s *PayrollService) Payslip(roleIDs []string) model.Payslip {
	slip := model.Payslip{Gross: s.economy.DefaultSalary}
	for _, rs := range s.economy.Salaries {
		for _, id := range roleIDs {
			if id == rs.RoleID && rs.Amount > slip.Gross {
				slip.Gross = rs.Amount
				slip.RoleID = rs.RoleID
			}
		}
	}
	slip.Tax = int64(math.Floor(float64(slip.Gross) * s.economy.TaxRate))
	slip.Net = slip.Gross - slip.Tax
	return slip
}

// CollectSalary credits the net salary to the identity's card.
func (s *PayrollService) CollectSalary(ctx context.Context, identity string, roleIDs []string) (*model.Payslip, error) {
	slip := s.Payslip(roleIDs)

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if slip.Net <= 0 {
		if _, ok := s.ledger.accounts.Get(identity); !ok {
			return nil, ErrNoAccount
		}
		return nil, ErrInvalidAmount
	}

	account, err := s.ledger.creditLocked(ctx, identity, slip.Net, model.ChannelCard)
	if err != nil {
		return nil, err
	}
	slip.CardBalance = account.CardBalance

	logger.Log.WithFields(logrus.Fields{
		"identity": identity,
		"role_id":  slip.RoleID,
		"gross":    slip.Gross,
		"tax":      slip.Tax,
	}).Info("Salary collected")
	return &slip, nil
}
