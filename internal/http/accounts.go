package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"interestbank/internal/domain"
	"interestbank/internal/portfolio"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountsHandler struct {
	Portfolio *portfolio.Portfolio
	Customers *portfolio.Customers
}

type createAccountReq struct {
	Kind         string          `json:"kind"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	CustomerID   string          `json:"customer_id"`
}

type accountResp struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	CustomerID   string          `json:"customer_id,omitempty"`
}

func toAccountResp(a *domain.Account) accountResp {
	out := accountResp{
		ID:           a.ID.String(),
		Kind:         string(a.Kind()),
		Balance:      a.Balance,
		InterestRate: a.InterestRate,
	}
	if a.Owner != nil {
		out.CustomerID = a.Owner.ID.String()
	}
	return out
}

func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAccountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	kind, err := domain.ParseKind(req.Kind)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid customer_id")
		return
	}

	owner, err := h.Customers.Get(customerID)
	if err != nil {
		if errors.Is(err, portfolio.ErrCustomerNotFound) {
			WriteError(w, http.StatusNotFound, "customer not found")
			return
		}
		WriteError(w, http.StatusInternalServerError, "customer lookup failed")
		return
	}

	a := domain.NewAccount(kind, req.Balance, req.InterestRate, owner)
	h.Portfolio.Add(a)

	WriteJSON(w, http.StatusCreated, toAccountResp(a))
}

func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accts := h.Portfolio.Accounts()
	out := make([]accountResp, 0, len(accts))
	for _, a := range accts {
		out = append(out, toAccountResp(a))
	}
	WriteJSON(w, http.StatusOK, out)
}

func (h *AccountsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	a, ok := h.Portfolio.Find(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "account not found")
		return
	}

	WriteJSON(w, http.StatusOK, toAccountResp(a))
}

func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if !h.Portfolio.RemoveByID(id) {
		WriteError(w, http.StatusNotFound, "account not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
