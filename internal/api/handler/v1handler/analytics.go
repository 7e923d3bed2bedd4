package v1handler

import (
	"net/http"
	"time"

	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"
)

// maxEventsPerRequest caps a single analytics batch.
const maxEventsPerRequest = 100

type TrackRequest struct {
	Events []domain.AnalyticsEvent `json:"events"`
}

// TrackEvents buffers client analytics events. Events of a session user are
// attributed to it; missing timestamps are set to the receive time.
func (h *Handler) TrackEvents(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}
	if len(req.Events) == 0 {
		controller.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "no events"))

		return
	}
	if len(req.Events) > maxEventsPerRequest {
		controller.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "at most %d events per request", maxEventsPerRequest))

		return
	}

	now := time.Now().UTC()
	user := GetUserFromContext(r.Context())
	for i := range req.Events {
		if user != nil {
			req.Events[i].UserID = &user.ID
		} else {
			req.Events[i].UserID = nil
		}
		if req.Events[i].OccurredAt.IsZero() {
			req.Events[i].OccurredAt = now
		}
	}

	if err := h.deps.Analytics.Track(r.Context(), req.Events...); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, map[string]int{"accepted": len(req.Events)})
}
