// Package sample builds the demonstration portfolio: two individuals, two
// companies and one account of each kind per category.
package sample

import (
	"github.com/shopspring/decimal"

	"interestbank/internal/domain"
	"interestbank/internal/money"
	"interestbank/internal/portfolio"
)

// Load registers the sample customers in cs and adds their six accounts to p.
func Load(p *portfolio.Portfolio, cs *portfolio.Customers) {
	john := domain.NewCustomer(domain.Individual, "John Doe")
	jane := domain.NewCustomer(domain.Individual, "Jane Doe")
	acme := domain.NewCustomer(domain.Company, "ACME Corp")
	xyz := domain.NewCustomer(domain.Company, "XYZ Inc")

	for _, c := range []*domain.Customer{john, jane, acme, xyz} {
		cs.Add(c)
	}

	p.Add(domain.NewDeposit(amt(500), money.MustParse("0.01"), john))
	p.Add(domain.NewDeposit(amt(1000), money.MustParse("0.02"), acme))
	p.Add(domain.NewLoan(amt(2000), money.MustParse("0.03"), jane))
	p.Add(domain.NewLoan(amt(3000), money.MustParse("0.04"), xyz))
	p.Add(domain.NewMortgage(amt(4000), money.MustParse("0.05"), john))
	p.Add(domain.NewMortgage(amt(5000), money.MustParse("0.06"), acme))
}

// Build returns a fresh portfolio under the default policy, loaded with the
// sample accounts.
func Build() (*portfolio.Portfolio, *portfolio.Customers) {
	p := portfolio.New(domain.DefaultPolicy())
	cs := portfolio.NewCustomers()
	Load(p, cs)
	return p, cs
}

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
