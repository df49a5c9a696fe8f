package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"interestbank/internal/money"
	"interestbank/internal/portfolio"
)

// Pinger reports backing store health; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Portfolio     *portfolio.Portfolio
	Customers     *portfolio.Customers
	Display       money.Display
	DefaultMonths int

	// DB is optional; without it /readyz always reports ready.
	DB Pinger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// middleware (keep it sane)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
			defer cancel()

			if err := d.DB.Ping(ctx); err != nil {
				WriteError(w, http.StatusServiceUnavailable, "db not ready")
				return
			}
		}

		WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	r.Route("/v1", func(r chi.Router) {
		ch := &CustomersHandler{Customers: d.Customers}
		r.Post("/customers", ch.Create)
		r.Get("/customers", ch.List)

		ah := &AccountsHandler{Portfolio: d.Portfolio, Customers: d.Customers}
		r.Post("/accounts", ah.Create)
		r.Get("/accounts", ah.List)
		r.Get("/accounts/{id}", ah.GetByID)
		r.Delete("/accounts/{id}", ah.Delete)

		ih := &InterestHandler{Portfolio: d.Portfolio, Display: d.Display, DefaultMonths: d.DefaultMonths}
		r.Get("/interest", ih.Total)
	})
	return r
}
