package v1handler

import (
	"errors"
	"net/http"

	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CompleteJobRequest struct {
	Status domain.QueueJobStatus `json:"status"`
	Error  string                `json:"error"`
}

type ProgressRequest struct {
	DirectoryName string                  `json:"directoryName"`
	Status        domain.SubmissionStatus `json:"status"`
	URL           string                  `json:"url"`
	Error         string                  `json:"error"`
}

func jobIDParam(r *http.Request) (domain.QueueJobID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.QueueJobID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid job id")
	}

	return domain.QueueJobID(id), nil
}

// NextJob claims the next queued job for the calling worker. An empty queue
// is answered with 204.
func (h *Handler) NextJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.deps.Queue.Next(r.Context())
	if errors.Is(err, serrors.ErrNotFound) {
		w.WriteHeader(http.StatusNoContent)

		return
	}
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	logger.Info(r.Context(), "job claimed", zap.Stringer("job_id", job.ID))
	controller.WriteJSON(w, http.StatusOK, job)
}

func (h *Handler) CompleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	var req CompleteJobRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	job, err := h.deps.Queue.Complete(r.Context(), id, req.Status, req.Error)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, job)
}

func (h *Handler) JobProgress(w http.ResponseWriter, r *http.Request) {
	id, err := jobIDParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	var req ProgressRequest
	if err := controller.DecodeJSON(w, r, h.options.MaxBodyBytes, &req); err != nil {
		controller.WriteError(w, r, err)

		return
	}

	submission, err := h.deps.Queue.Progress(r.Context(), domain.JobProgress{
		JobID:         id,
		DirectoryName: req.DirectoryName,
		Status:        req.Status,
		URL:           req.URL,
		Error:         req.Error,
	})
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, submission)
}
