package httpx

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"interestbank/internal/money"
	"interestbank/internal/portfolio"
)

type InterestHandler struct {
	Portfolio     *portfolio.Portfolio
	Display       money.Display
	DefaultMonths int
}

type accrualResp struct {
	AccountID string          `json:"account_id"`
	Kind      string          `json:"kind"`
	Interest  decimal.Decimal `json:"interest"`
}

type interestResp struct {
	Months    int             `json:"months"`
	Total     decimal.Decimal `json:"total"`
	Formatted string          `json:"formatted"`
	Accounts  []accrualResp   `json:"accounts"`
}

// Total reports the portfolio's interest for ?months=N. Zero and negative
// horizons are passed through to the rules unchanged.
func (h *InterestHandler) Total(w http.ResponseWriter, r *http.Request) {
	months := h.DefaultMonths
	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "months must be an integer")
			return
		}
		months = n
	}

	breakdown := h.Portfolio.Breakdown(months)
	total := portfolio.Sum(breakdown)

	out := interestResp{
		Months:    months,
		Total:     total,
		Formatted: h.Display.Format(total),
		Accounts:  make([]accrualResp, 0, len(breakdown)),
	}
	for _, x := range breakdown {
		out.Accounts = append(out.Accounts, accrualResp{
			AccountID: x.Account.ID.String(),
			Kind:      string(x.Account.Kind()),
			Interest:  x.Interest,
		})
	}

	WriteJSON(w, http.StatusOK, out)
}
