// Package portfolio aggregates interest over a set of accounts.
package portfolio

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"interestbank/internal/domain"
)

// Portfolio holds account references in insertion order. It does not own the
// accounts or their customers. One mutex serialises every call.
type Portfolio struct {
	mu       sync.Mutex
	policy   domain.InterestPolicy
	accounts []*domain.Account
}

// Accrual is the interest of one account over a horizon.
type Accrual struct {
	Account  *domain.Account
	Interest decimal.Decimal
}

func New(policy domain.InterestPolicy) *Portfolio {
	return &Portfolio{policy: policy}
}

// Add appends unconditionally; the same account may be added twice.
func (p *Portfolio) Add(a *domain.Account) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts = append(p.accounts, a)
}

// Remove drops the first reference to a. Absent accounts are ignored.
func (p *Portfolio) Remove(a *domain.Account) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, x := range p.accounts {
		if x == a {
			p.removeAt(i)
			return
		}
	}
}

// RemoveByID drops the first account with the given id and reports whether
// one was found.
func (p *Portfolio) RemoveByID(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, x := range p.accounts {
		if x.ID == id {
			p.removeAt(i)
			return true
		}
	}
	return false
}

func (p *Portfolio) removeAt(i int) {
	copy(p.accounts[i:], p.accounts[i+1:])
	p.accounts[len(p.accounts)-1] = nil
	p.accounts = p.accounts[:len(p.accounts)-1]
}

func (p *Portfolio) Find(id uuid.UUID) (*domain.Account, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, x := range p.accounts {
		if x.ID == id {
			return x, true
		}
	}
	return nil, false
}

// Accounts returns a copy of the member list in insertion order.
func (p *Portfolio) Accounts() []*domain.Account {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*domain.Account, len(p.accounts))
	copy(out, p.accounts)
	return out
}

func (p *Portfolio) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.accounts)
}

// TotalInterest sums each member's interest for the horizon. Empty
// portfolios return 0.
func (p *Portfolio) TotalInterest(months int) decimal.Decimal {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := decimal.Zero
	for _, a := range p.accounts {
		total = total.Add(p.policy.Interest(a, months))
	}
	return total
}

// Breakdown is TotalInterest per account, in insertion order.
func (p *Portfolio) Breakdown(months int) []Accrual {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Accrual, 0, len(p.accounts))
	for _, a := range p.accounts {
		out = append(out, Accrual{Account: a, Interest: p.policy.Interest(a, months)})
	}
	return out
}

// Sum adds up a breakdown.
func Sum(accruals []Accrual) decimal.Decimal {
	total := decimal.Zero
	for _, x := range accruals {
		total = total.Add(x.Interest)
	}
	return total
}
