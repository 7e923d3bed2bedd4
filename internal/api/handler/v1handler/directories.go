package v1handler

import (
	"net/http"
	"strconv"
	"strings"

	"directorybolt/internal/catalog"
	"directorybolt/internal/formmap"
	"directorybolt/pkg/controller"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// DirectoryDetails is a directory with its submission form mapping and
// planning metrics.
type DirectoryDetails struct {
	domain.Directory

	FormMapping formmap.Mapping `json:"formMapping"`
	Metrics     catalog.Metrics `json:"metrics"`
}

func parseFilter(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()
	f := catalog.Filter{
		Category:       q.Get("category"),
		Tier:           domain.DirectoryTier(q.Get("tier")),
		Difficulty:     domain.Difficulty(q.Get("difficulty")),
		Priority:       domain.Priority(q.Get("priority")),
		Search:         strings.TrimSpace(q.Get("search")),
		AccessibleOnly: q.Get("accessible") == "true",
		Sort:           catalog.Sort(q.Get("sort")),
	}

	intParam := func(name string) (*int, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, serrors.With(serrors.ErrBadRequest, "%s must be an integer", name)
		}

		return &n, nil
	}

	var err error
	if f.MinDA, err = intParam("minDA"); err != nil {
		return f, err
	}
	if f.MaxDA, err = intParam("maxDA"); err != nil {
		return f, err
	}
	limit, err := intParam("limit")
	if err != nil {
		return f, err
	}
	if limit != nil {
		f.Limit = *limit
	}
	offset, err := intParam("offset")
	if err != nil {
		return f, err
	}
	if offset != nil {
		if *offset < 0 {
			return f, serrors.With(serrors.ErrBadRequest, "offset must not be negative")
		}
		f.Offset = *offset
	}

	return f, nil
}

// ListDirectories returns a filtered page of the active catalog.
func (h *Handler) ListDirectories(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	page, err := h.deps.Catalog.List(r.Context(), f)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) DirectoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Catalog.Stats(r.Context())
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, DirectoryDetails{
		Directory:   *d,
		FormMapping: formmap.MappingFor(*d),
		Metrics:     catalog.MetricsFor(*d),
	})
}

// DirectoryChanges lists the newest form changes detected on a directory.
func (h *Handler) DirectoryChanges(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}

	siteID := formmap.SanitizeSiteID(chi.URLParam(r, "id"))
	changes, err := h.deps.Storage.FormChanges(r.Context(), siteID, uint(limit)) //nolint: gosec
	if err != nil {
		controller.WriteError(w, r, err)

		return
	}
	if changes == nil {
		changes = []domain.FormChangeEvent{}
	}

	controller.WriteJSON(w, http.StatusOK, struct {
		SiteID  string                   `json:"siteId"`
		Changes []domain.FormChangeEvent `json:"changes"`
	}{SiteID: siteID, Changes: changes})
}
