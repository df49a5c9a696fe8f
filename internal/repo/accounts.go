package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"interestbank/internal/domain"
	"interestbank/internal/portfolio"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type accountRow struct {
	CustomerID   string
	CustomerName string
	Category     string
	AccountID    string
	Kind         string
	Balance      string
	InterestRate string
}

// LoadPortfolio reads every account with its owner and adds them to p in
// table order. Customers are registered in cs; accounts of one customer share
// a single *domain.Customer. Nothing is written back.
func LoadPortfolio(ctx context.Context, db Querier, p *portfolio.Portfolio, cs *portfolio.Customers) (int, error) {
	const q = `
SELECT c.id::text, c.name, c.category,
       a.id::text, a.kind, a.balance::text, a.interest_rate::text
FROM accounts a
JOIN customers c ON c.id = a.customer_id
ORDER BY a.seq
`
	rows, err := db.Query(ctx, q)
	if err != nil {
		return 0, err
	}

	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (accountRow, error) {
		var r accountRow
		err := row.Scan(&r.CustomerID, &r.CustomerName, &r.Category,
			&r.AccountID, &r.Kind, &r.Balance, &r.InterestRate)
		return r, err
	})
	if err != nil {
		return 0, err
	}

	accts, customers, err := buildAccounts(recs)
	if err != nil {
		return 0, err
	}
	for _, c := range customers {
		cs.Add(c)
	}
	for _, a := range accts {
		p.Add(a)
	}
	return len(accts), nil
}

// buildAccounts turns rows into domain values. Unrecognised categories are
// kept as-is and fall under the no-grace-period rules.
func buildAccounts(recs []accountRow) ([]*domain.Account, []*domain.Customer, error) {
	owners := make(map[uuid.UUID]*domain.Customer)
	var customers []*domain.Customer
	accts := make([]*domain.Account, 0, len(recs))

	for _, r := range recs {
		cid, err := uuid.Parse(r.CustomerID)
		if err != nil {
			return nil, nil, fmt.Errorf("customer id %q: %w", r.CustomerID, err)
		}
		owner, ok := owners[cid]
		if !ok {
			category, err := domain.ParseCategory(r.Category)
			if err != nil {
				category = domain.Category(r.Category)
			}
			owner = domain.NewCustomer(category, r.CustomerName)
			owner.ID = cid
			owners[cid] = owner
			customers = append(customers, owner)
		}

		aid, err := uuid.Parse(r.AccountID)
		if err != nil {
			return nil, nil, fmt.Errorf("account id %q: %w", r.AccountID, err)
		}
		kind, err := domain.ParseKind(r.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("account %s: %w", aid, err)
		}
		balance, err := decimal.NewFromString(r.Balance)
		if err != nil {
			return nil, nil, fmt.Errorf("account %s balance: %w", aid, err)
		}
		rate, err := decimal.NewFromString(r.InterestRate)
		if err != nil {
			return nil, nil, fmt.Errorf("account %s interest_rate: %w", aid, err)
		}

		a := domain.NewAccount(kind, balance, rate, owner)
		a.ID = aid
		accts = append(accts, a)
	}
	return accts, customers, nil
}
