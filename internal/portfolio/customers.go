package portfolio

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"interestbank/internal/domain"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Customers is a directory of customers that accounts can be opened for.
type Customers struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*domain.Customer
	order []*domain.Customer
}

func NewCustomers() *Customers {
	return &Customers{byID: make(map[uuid.UUID]*domain.Customer)}
}

// Add registers c. Re-adding a known id is a no-op.
func (cs *Customers) Add(c *domain.Customer) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.byID[c.ID]; ok {
		return
	}
	cs.byID[c.ID] = c
	cs.order = append(cs.order, c)
}

func (cs *Customers) Get(id uuid.UUID) (*domain.Customer, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	c, ok := cs.byID[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// List returns customers in registration order.
func (cs *Customers) List() []*domain.Customer {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	out := make([]*domain.Customer, len(cs.order))
	copy(out, cs.order)
	return out
}
