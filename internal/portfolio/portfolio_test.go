package portfolio

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"interestbank/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newScenario() (*Portfolio, []*domain.Account) {
	john := domain.NewCustomer(domain.Individual, "John Doe")
	jane := domain.NewCustomer(domain.Individual, "Jane Doe")
	acme := domain.NewCustomer(domain.Company, "ACME Corp")
	xyz := domain.NewCustomer(domain.Company, "XYZ Inc")

	accts := []*domain.Account{
		domain.NewDeposit(d("500"), d("0.01"), john),
		domain.NewDeposit(d("1000"), d("0.02"), acme),
		domain.NewLoan(d("2000"), d("0.03"), jane),
		domain.NewLoan(d("3000"), d("0.04"), xyz),
		domain.NewMortgage(d("4000"), d("0.05"), john),
		domain.NewMortgage(d("5000"), d("0.06"), acme),
	}

	p := New(domain.DefaultPolicy())
	for _, a := range accts {
		p.Add(a)
	}
	return p, accts
}

func TestTotalInterestScenario(t *testing.T) {
	p, _ := newScenario()

	got := p.TotalInterest(6)
	if !got.Equal(d("0.72")) {
		t.Fatalf("total = %s, want 0.72", got)
	}
}

func TestEmptyPortfolio(t *testing.T) {
	p := New(domain.DefaultPolicy())
	for _, m := range []int{-12, 0, 6, 600} {
		if got := p.TotalInterest(m); !got.IsZero() {
			t.Fatalf("months=%d total = %s, want 0", m, got)
		}
	}
}

func TestTotalIsSumOfAccounts(t *testing.T) {
	policy := domain.DefaultPolicy()
	_, accts := newScenario()

	// reversed order, one account twice
	p := New(policy)
	for i := len(accts) - 1; i >= 0; i-- {
		p.Add(accts[i])
	}
	p.Add(accts[3])

	for _, m := range []int{-1, 0, 2, 3, 7, 13, 36} {
		want := policy.Interest(accts[3], m)
		for _, a := range accts {
			want = want.Add(policy.Interest(a, m))
		}
		if got := p.TotalInterest(m); !got.Equal(want) {
			t.Fatalf("months=%d total = %s, want %s", m, got, want)
		}
		if got := Sum(p.Breakdown(m)); !got.Equal(want) {
			t.Fatalf("months=%d breakdown sum = %s, want %s", m, got, want)
		}
	}
}

func TestBreakdownOrder(t *testing.T) {
	p, accts := newScenario()
	want := []string{"0", "0.12", "0.18", "0.24", "0", "0.18"}

	got := p.Breakdown(6)
	if len(got) != len(want) {
		t.Fatalf("breakdown len = %d, want %d", len(got), len(want))
	}
	for i, x := range got {
		if x.Account != accts[i] {
			t.Fatalf("breakdown[%d] is not the %dth added account", i, i)
		}
		if !x.Interest.Equal(d(want[i])) {
			t.Fatalf("breakdown[%d] = %s, want %s", i, x.Interest, want[i])
		}
	}
}

func TestRemove(t *testing.T) {
	t.Run("removes the account", func(t *testing.T) {
		p, accts := newScenario()
		p.Remove(accts[5]) // company mortgage, 0.18
		if got := p.TotalInterest(6); !got.Equal(d("0.54")) {
			t.Fatalf("total = %s, want 0.54", got)
		}
		if p.Len() != 5 {
			t.Fatalf("len = %d, want 5", p.Len())
		}
	})

	t.Run("absent account is a no-op", func(t *testing.T) {
		p, _ := newScenario()
		stranger := domain.NewLoan(d("3000"), d("0.04"), nil)
		p.Remove(stranger)
		p.Remove(nil)
		if p.Len() != 6 {
			t.Fatalf("len = %d, want 6", p.Len())
		}
		if got := p.TotalInterest(6); !got.Equal(d("0.72")) {
			t.Fatalf("total = %s, want 0.72", got)
		}
	})

	t.Run("removes only the first duplicate", func(t *testing.T) {
		p := New(domain.DefaultPolicy())
		a := domain.NewDeposit(d("2000"), d("0.01"), nil)
		p.Add(a)
		p.Add(a)
		p.Remove(a)
		if p.Len() != 1 {
			t.Fatalf("len = %d, want 1", p.Len())
		}
		p.Remove(a)
		p.Remove(a)
		if p.Len() != 0 {
			t.Fatalf("len = %d, want 0", p.Len())
		}
	})

	t.Run("by identity, not by value", func(t *testing.T) {
		p := New(domain.DefaultPolicy())
		a := domain.NewDeposit(d("2000"), d("0.01"), nil)
		twin := *a
		p.Add(a)
		p.Remove(&twin)
		if p.Len() != 1 {
			t.Fatalf("len = %d, want 1", p.Len())
		}
	})
}

func TestRemoveByIDAndFind(t *testing.T) {
	p, accts := newScenario()

	if got, ok := p.Find(accts[2].ID); !ok || got != accts[2] {
		t.Fatalf("Find did not return the loan account")
	}
	if !p.RemoveByID(accts[2].ID) {
		t.Fatalf("RemoveByID should report removal")
	}
	if p.RemoveByID(accts[2].ID) {
		t.Fatalf("second RemoveByID should report nothing removed")
	}
	if _, ok := p.Find(uuid.New()); ok {
		t.Fatalf("Find returned an unknown id")
	}
	if got := p.TotalInterest(6); !got.Equal(d("0.54")) {
		t.Fatalf("total = %s, want 0.54", got)
	}
}

func TestAccountsIsACopy(t *testing.T) {
	p, _ := newScenario()
	list := p.Accounts()
	list[0] = nil
	if p.Accounts()[0] == nil {
		t.Fatalf("Accounts leaked the internal slice")
	}
}

func TestConcurrentAddRemove(t *testing.T) {
	p := New(domain.DefaultPolicy())
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			a := domain.NewDeposit(d("1000"), d("0.01"), nil)
			p.Add(a)
			_ = p.TotalInterest(1)
			p.Remove(a)
			p.Add(a)
		}()
	}
	wg.Wait()

	if p.Len() != n {
		t.Fatalf("len = %d, want %d", p.Len(), n)
	}
	if got := p.TotalInterest(1); !got.Equal(d("1")) {
		t.Fatalf("total = %s, want 1", got)
	}
}
