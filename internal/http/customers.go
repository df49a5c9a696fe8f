package httpx

import (
	"encoding/json"
	"net/http"

	"interestbank/internal/domain"
	"interestbank/internal/portfolio"
)

type CustomersHandler struct {
	Customers *portfolio.Customers
}

type createCustomerReq struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type customerResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func toCustomerResp(c *domain.Customer) customerResp {
	return customerResp{ID: c.ID.String(), Name: c.Name, Category: string(c.Category())}
}

func (h *CustomersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCustomerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	c := domain.NewCustomer(category, req.Name)
	h.Customers.Add(c)

	WriteJSON(w, http.StatusCreated, toCustomerResp(c))
}

func (h *CustomersHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.Customers.List()
	out := make([]customerResp, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResp(c))
	}
	WriteJSON(w, http.StatusOK, out)
}
