package v1handler

import (
	"net/http"

	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"go.uber.org/zap"
)

type EnqueueRequest struct {
	CustomerID domain.CustomerID `json:"customerId"`
}

// QueueJobList is a page of queue jobs.
type QueueJobList struct {
	Items      []domain.QueueJob `json:"items"`
	NextCursor *string           `json:"nextCursor"`
}

func (h *Handler) ListQueue(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	q := r.URL.Query()
	jobs, next, err := h.deps.Queue.List(r.Context(),
		domain.QueueJobStatus(q.Get("status")),
		q.Get("cursor"),
		uint(limit)) //nolint: gosec
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	out := QueueJobList{Items: jobs}
	if out.Items == nil {
		out.Items = []domain.QueueJob{}
	}
	if next != "" {
		out.NextCursor = &next
	}

	controller.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) QueueStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Queue.Stats(r.Context())
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetQueueJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	details, err := h.deps.Queue.Job(r.Context(), id)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, details)
}

// EnqueueCustomer queues a submission run for a business record.
func (h *Handler) EnqueueCustomer(w http.ResponseWriter, r *http.Request) {
	var req EnqueueRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}
	if req.CustomerID == (domain.CustomerID{}) {
		controller.WriteError(w, r, serrors.With(serrors.ErrBadRequest, "customerId is required"))

		return
	}

	job, err := h.deps.Queue.Enqueue(r.Context(), req.CustomerID)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	logger.Info(r.Context(), "customer queued by operator",
		zap.Stringer("customer_id", req.CustomerID),
		zap.Stringer("job_id", job.ID))
	controller.WriteJSON(w, http.StatusCreated, job)
}

// RetryQueueJob puts a failed job back in the queue.
func (h *Handler) RetryQueueJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	job, err := h.deps.Queue.Retry(r.Context(), id)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, job)
}
