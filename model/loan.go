package model

// DaysPerMonth is the fixed month length used to spread a loan over days.
const DaysPerMonth = 30

type LoanState string

const (
	LoanStateNone    LoanState = "none"
	LoanStateActive  LoanState = "active"
	LoanStateSettled LoanState = "settled"
)

// Loan is the repayment record of one identity. Settled loans are kept.
type Loan struct {
	Identity         string `json:"identity,omitempty"`
	Principal        int64  `json:"cantidad"`
	Remaining        int64  `json:"restante"`
	IssuedOn         Date   `json:"fecha"`
	TermMonths       int    `json:"meses"`
	TotalDays        int    `json:"dias_totales"`
	DailyInstallment int64  `json:"cuota_diaria"`
	LastInstallment  *Date  `json:"ultimo_descuento"`
}

// NewLoan computes the repayment schedule for principal over termMonths.
func NewLoan(identity string, principal int64, termMonths int, issuedOn Date) *Loan {
	totalDays := termMonths * DaysPerMonth
	return &Loan{
		Identity:         identity,
		Principal:        principal,
		Remaining:        principal,
		IssuedOn:         issuedOn,
		TermMonths:       termMonths,
		TotalDays:        totalDays,
		DailyInstallment: DailyInstallmentFor(principal, totalDays),
	}
}

// DailyInstallmentFor is principal / totalDays floored, never below 1.
func DailyInstallmentFor(principal int64, totalDays int) int64 {
	if totalDays < 1 {
		totalDays = 1
	}
	return max(1, principal/int64(totalDays))
}

func (l *Loan) State() LoanState {
	if l == nil {
		return LoanStateNone
	}
	if l.Remaining > 0 {
		return LoanStateActive
	}
	return LoanStateSettled
}

func (l *Loan) Active() bool {
	return l.State() == LoanStateActive
}

// Installment returns the daily amount, recomputing it for records written
// without one.
func (l *Loan) Installment() int64 {
	if l.DailyInstallment > 0 {
		return l.DailyInstallment
	}
	return DailyInstallmentFor(l.Principal, l.TotalDays)
}

// ChargedOn reports whether the day's installment attempt was already made.
func (l *Loan) ChargedOn(day Date) bool {
	return l.LastInstallment != nil && *l.LastInstallment == day
}

// Reduce lowers Remaining by amount, clamped at zero, and returns what is left.
func (l *Loan) Reduce(amount int64) int64 {
	l.Remaining -= amount
	if l.Remaining < 0 {
		l.Remaining = 0
	}
	return l.Remaining
}

// PaymentResult is returned by a manual loan payment.
type PaymentResult struct {
	Paid        int64 `json:"paid"`
	Remaining   int64 `json:"remaining"`
	Settled     bool  `json:"settled"`
	CardBalance int64 `json:"card_balance"`
}
