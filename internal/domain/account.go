package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the product type of an account. It selects the interest rule.
type Kind string

const (
	Deposit  Kind = "deposit"
	Loan     Kind = "loan"
	Mortgage Kind = "mortgage"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Deposit, Loan, Mortgage:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Account is one financial instrument. Balance and InterestRate (per month)
// may change between calculations; the kind may not.
type Account struct {
	ID           uuid.UUID
	Balance      decimal.Decimal
	InterestRate decimal.Decimal
	Owner        *Customer

	kind Kind
}

func NewAccount(kind Kind, balance, rate decimal.Decimal, owner *Customer) *Account {
	return &Account{
		ID:           uuid.New(),
		Balance:      balance,
		InterestRate: rate,
		Owner:        owner,
		kind:         kind,
	}
}

func NewDeposit(balance, rate decimal.Decimal, owner *Customer) *Account {
	return NewAccount(Deposit, balance, rate, owner)
}

func NewLoan(balance, rate decimal.Decimal, owner *Customer) *Account {
	return NewAccount(Loan, balance, rate, owner)
}

func NewMortgage(balance, rate decimal.Decimal, owner *Customer) *Account {
	return NewAccount(Mortgage, balance, rate, owner)
}

func (a *Account) Kind() Kind {
	return a.kind
}
