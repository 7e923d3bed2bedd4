package v1handler

import (
	"errors"
	"io"
	"net/http"

	"directorybolt/internal/billing"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
)

type CheckoutRequest struct {
	Tier       string             `json:"tier"`
	Email      string             `json:"email"`
	CustomerID *domain.CustomerID `json:"customerId,omitempty"`
}

// CreateCheckout opens a hosted checkout. A session user becomes the buyer.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	in := billing.CheckoutRequest{
		Tier:       req.Tier,
		Email:      req.Email,
		CustomerID: req.CustomerID,
	}
	if user := GetUserFromContext(r.Context()); user != nil {
		in.UserID = &user.ID
		if in.Email == "" {
			in.Email = user.Email
		}
	}

	checkout, err := h.deps.Billing.CreateCheckout(r.Context(), in)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, checkout)
}

// StripeWebhook applies a payment processor event. A signature failure is
// answered with 400 so the processor does not keep retrying it.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body := io.Reader(r.Body)
	if h.options.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes)
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		controller.WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read payload"))

		return
	}

	err = h.deps.Billing.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	if errors.Is(err, serrors.ErrUnauthorized) {
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid signature")
	}
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}
