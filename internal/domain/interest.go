package domain

import (
	"github.com/shopspring/decimal"
)

// InterestPolicy holds the thresholds of the flat per-month interest rules.
// Interest is always months * rate; the balance only matters for the deposit
// minimum.
type InterestPolicy struct {
	// DepositMinBalance: deposits with 0 < balance < this earn nothing.
	DepositMinBalance decimal.Decimal

	// Loan grace periods, in months. Within the grace period interest is 0;
	// after it the full month count is billed.
	LoanGraceIndividual int
	LoanGraceCompany    int

	// Mortgage grace periods, in months. After the grace period only the
	// months past it are billed. Companies pay half rate during theirs.
	MortgageGraceIndividual int
	MortgageGraceCompany    int
}

var half = decimal.New(5, -1)

func DefaultPolicy() InterestPolicy {
	return InterestPolicy{
		DepositMinBalance:       decimal.NewFromInt(1000),
		LoanGraceIndividual:     3,
		LoanGraceCompany:        2,
		MortgageGraceIndividual: 6,
		MortgageGraceCompany:    12,
	}
}

// Interest dispatches on the account kind. A nil owner counts as an unknown
// category. An account without a kind accrues nothing.
func (p InterestPolicy) Interest(a *Account, months int) decimal.Decimal {
	switch a.Kind() {
	case Deposit:
		return p.Deposit(a.Balance, a.InterestRate, months)
	case Loan:
		return p.Loan(a.Balance, a.InterestRate, months, a.Owner.Category())
	case Mortgage:
		return p.Mortgage(a.Balance, a.InterestRate, months, a.Owner.Category())
	}
	return decimal.Zero
}

// Deposit = 0 when 0 < balance < DepositMinBalance, else months * rate.
// Zero and negative balances take the flat formula.
func (p InterestPolicy) Deposit(balance, rate decimal.Decimal, months int) decimal.Decimal {
	if balance.IsPositive() && balance.LessThan(p.DepositMinBalance) {
		return decimal.Zero
	}
	return flat(rate, months)
}

// Loan = 0 within the category's grace period, else months * rate over the
// full month count. Unknown categories get no grace period.
func (p InterestPolicy) Loan(balance, rate decimal.Decimal, months int, category Category) decimal.Decimal {
	switch category {
	case Individual:
		if months <= p.LoanGraceIndividual {
			return decimal.Zero
		}
	case Company:
		if months <= p.LoanGraceCompany {
			return decimal.Zero
		}
	}
	return flat(rate, months)
}

// Mortgage bills only the months past the grace period.
//   - individual: 0 within grace
//   - company: months * rate / 2 within grace
//   - unknown: months * rate, no grace
func (p InterestPolicy) Mortgage(balance, rate decimal.Decimal, months int, category Category) decimal.Decimal {
	switch category {
	case Individual:
		if months <= p.MortgageGraceIndividual {
			return decimal.Zero
		}
		months -= p.MortgageGraceIndividual
	case Company:
		if months <= p.MortgageGraceCompany {
			return flat(rate, months).Mul(half)
		}
		months -= p.MortgageGraceCompany
	}
	return flat(rate, months)
}

func flat(rate decimal.Decimal, months int) decimal.Decimal {
	return decimal.NewFromInt(int64(months)).Mul(rate)
}
