package v1handler

import (
	"net/http"
	"strings"

	"directorybolt/internal/auth"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
	"directorybolt/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Description  string `json:"description"`
	Category     string `json:"category"`
}

// CustomerList is a page of business records.
type CustomerList struct {
	Items      []domain.Customer `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

func (req CreateCustomerRequest) customer(user *domain.User) (domain.Customer, error) {
	name := strings.TrimSpace(req.BusinessName)
	if name == "" {
		return domain.Customer{}, serrors.With(serrors.ErrBadRequest, "businessName is required")
	}

	email := req.Email
	if strings.TrimSpace(email) == "" {
		email = user.Email
	}
	email, err := auth.NormalizeEmail(email)
	if err != nil {
		return domain.Customer{}, err //nolint: wrapcheck
	}

	return domain.Customer{
		UserID:       &user.ID,
		BusinessName: name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Website:      strings.TrimSpace(req.Website),
		Address:      strings.TrimSpace(req.Address),
		City:         strings.TrimSpace(req.City),
		State:        strings.TrimSpace(req.State),
		Zip:          strings.TrimSpace(req.Zip),
		Description:  strings.TrimSpace(req.Description),
		Category:     strings.TrimSpace(req.Category),
		Tier:         user.Tier,
		Status:       domain.CustomerStatusPending,
	}, nil
}

// CreateCustomer registers a business record for the session user.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	c, err := req.customer(GetUserFromContext(r.Context()))
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	created, err := h.deps.Storage.CreateCustomer(r.Context(), c)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, created)
}

// GetCustomer returns a business record of the session user. Records of other
// users are reported as not found.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		controller.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid customer id"))

		return
	}

	c, err := h.deps.Storage.CustomerByID(r.Context(), domain.CustomerID(id))
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}
	user := GetUserFromContext(r.Context())
	if c == nil || c.UserID == nil || *c.UserID != user.ID {
		controller.WriteError(w, r, serrors.With(serrors.ErrNotFound, "customer not found"))

		return
	}

	controller.WriteJSON(w, http.StatusOK, c)
}

// ListCustomers pages through all business records, newest first.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	filter := storage.CustomerFilter{
		Status: domain.CustomerStatus(q.Get("status")),
		Limit:  uint(limit), //nolint: gosec
	}
	if raw := q.Get("cursor"); raw != "" {
		filter.Cursor, err = storage.ParsePageCursor(raw)
		if err != nil {
			controller.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor"))

			return
		}
	}

	page, err := h.deps.Storage.ListCustomers(r.Context(), filter)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	out := CustomerList{Items: page.Customers}
	if out.Items == nil {
		out.Items = []domain.Customer{}
	}
	if page.NextCursor != nil {
		next := page.NextCursor.String()
		out.NextCursor = &next
	}

	controller.WriteJSON(w, http.StatusOK, out)
}
