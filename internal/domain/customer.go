package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category is the legal category of a customer.
type Category string

const (
	Individual Category = "individual"
	Company    Category = "company"
)

// ParseCategory maps text to a known category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Individual, Company:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Customer owns accounts. Accounts hold a pointer to it; several accounts may
// share one customer.
type Customer struct {
	ID       uuid.UUID
	Name     string
	category Category
}

func NewCustomer(category Category, name string) *Customer {
	return &Customer{ID: uuid.New(), Name: name, category: category}
}

// Category returns the category set at construction. A nil customer has no
// category.
func (c *Customer) Category() Category {
	if c == nil {
		return ""
	}
	return c.category
}
