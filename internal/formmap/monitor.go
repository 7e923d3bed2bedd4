package formmap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"directorybolt/pkg/blob"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/events"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/metrics"
	"directorybolt/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mode selects what Process does after a capture.
type Mode string

const (
	// ModeMap captures and stores.
	ModeMap Mode = "map"
	// ModeMonitor also diffs against the previous capture.
	ModeMonitor Mode = "monitor"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeMap, ModeMonitor:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// ChangeLevel is the level of recorded change events.
const ChangeLevel = "CHANGE"

// Artifact names.
const (
	ArtifactHTML       = "html"
	ArtifactScreenshot = "screenshot"
	ArtifactMap        = "map"
)

// Target is a page to capture.
type Target struct {
	SiteID        string
	DirectoryID   string
	Homepage      string
	SubmissionURL string
}

// URL is the submission page, or the homepage when it is unknown.
func (t Target) URL() string {
	if t.SubmissionURL != "" {
		return t.SubmissionURL
	}

	return t.Homepage
}

// TargetFor builds the target of a directory.
func TargetFor(d domain.Directory) Target {
	return Target{
		SiteID:        SanitizeSiteID(d.ID),
		DirectoryID:   d.ID,
		Homepage:      d.URL,
		SubmissionURL: d.SubmissionURL,
	}
}

// Outcome is the result of processing one target.
type Outcome struct {
	Target   Target
	Snapshot *domain.FormSnapshot
	// Change is set when monitoring detected a difference.
	Change *domain.FormChangeEvent
	Err    error
}

// Monitor captures submission pages and records how they change.
type Monitor struct {
	renderer  Renderer
	storage   storage.FormStorage
	blob      blob.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewMonitor creates a Monitor.
func NewMonitor(renderer Renderer, formStorage storage.FormStorage, store blob.Store, publisher events.Publisher) *Monitor {
	return &Monitor{
		renderer:  renderer,
		storage:   formStorage,
		blob:      store,
		publisher: publisher,
		now:       time.Now,
	}
}

// Capture renders the target and analyzes it. Failures are reported in the
// snapshot status, never as an error.
func (m *Monitor) Capture(ctx context.Context, target Target) (*domain.FormSnapshot, *Rendered) {
	snap := &domain.FormSnapshot{
		SiteID:      target.SiteID,
		DirectoryID: target.DirectoryID,
		TargetURL:   target.URL(),
		Status:      domain.SnapshotStatusError,
		CapturedAt:  m.now().UTC(),
	}
	if snap.TargetURL == "" {
		snap.Error = "no submission url or homepage"

		return snap, nil
	}

	start := time.Now()
	page, err := m.renderer.Render(ctx, snap.TargetURL)
	snap.LoadDuration = time.Since(start)
	if err != nil {
		snap.Error = err.Error()

		return snap, nil
	}

	if err := Analyze(snap, page.HTML); err != nil {
		snap.Error = err.Error()

		return snap, page
	}
	snap.ResolvedURL = page.ResolvedURL
	snap.Status = domain.SnapshotStatusOK

	return snap, page
}

// Analyze fills the form related fields of snap from a rendered DOM.
func Analyze(snap *domain.FormSnapshot, html string) error {
	p, err := ParsePage(html)
	if err != nil {
		return err
	}

	snap.Forms = p.Forms()
	snap.DOMChecksum = DOMChecksum(html)
	snap.FormSignature = FormSignature(snap.Forms)
	snap.FormCount = len(snap.Forms)
	snap.FieldCount = 0
	for _, f := range snap.Forms {
		snap.FieldCount += len(f.Fields)
	}
	snap.HasCaptcha = p.HasCaptcha()
	snap.StepSignals = StepSignals(snap.Forms, html)
	snap.LikelyMultiStep = len(snap.StepSignals) > 0

	return nil
}

// Process captures a target, writes its artifacts and stores the snapshot.
// In monitor mode the capture is compared with the latest stored one and a
// change event is recorded and published when they differ.
func (m *Monitor) Process(ctx context.Context, mode Mode, target Target) (*Outcome, error) {
	ctx = logger.WithFields(logger.Named(ctx, "formmap"), zap.String("siteId", target.SiteID))
	out := &Outcome{Target: target}

	var prev *domain.FormSnapshot
	if mode == ModeMonitor {
		var err error
		if prev, err = m.storage.LatestFormSnapshot(ctx, target.SiteID); err != nil {
			return nil, fmt.Errorf("load previous capture: %w", err)
		}
	}

	snap, page := m.Capture(ctx, target)
	metrics.ObserveFormCapture(string(snap.Status))
	if snap.Status == domain.SnapshotStatusOK {
		m.writeArtifacts(ctx, snap, page)
	} else {
		logger.Warn(ctx, "capture failed", zap.String("url", snap.TargetURL), zap.String("error", snap.Error))
	}

	stored, err := m.storage.StoreFormSnapshot(ctx, *snap)
	if err != nil {
		return nil, fmt.Errorf("store capture: %w", err)
	}
	out.Snapshot = stored

	if mode != ModeMonitor || stored.Status != domain.SnapshotStatusOK {
		return out, nil
	}
	if prev == nil {
		logger.Info(ctx, "baseline capture stored")

		return out, nil
	}

	changes := Compare(prev, stored)
	if len(changes) == 0 {
		logger.Debug(ctx, "no changes")

		return out, nil
	}

	event, err := m.storage.StoreFormChange(ctx, newChangeEvent(prev, stored, changes, m.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("store change: %w", err)
	}
	out.Change = event
	for _, c := range changes {
		metrics.ObserveFormChange(string(c))
	}

	if _, err := m.publisher.Publish(ctx, *event); err != nil {
		logger.Error(ctx, "could not publish form change", zap.Error(err))
	}

	return out, nil
}

func newChangeEvent(prev, cur *domain.FormSnapshot, changes []domain.FormChangeType, now time.Time) domain.FormChangeEvent {
	names := make([]string, 0, len(changes))
	for _, c := range changes {
		names = append(names, string(c))
	}
	slices.Sort(names)

	return domain.FormChangeEvent{
		SiteID:              cur.SiteID,
		Level:               ChangeLevel,
		ChangeTypes:         changes,
		PreviousChecksum:    prev.DOMChecksum,
		NewChecksum:         cur.DOMChecksum,
		PreviousSignature:   prev.FormSignature,
		NewSignature:        cur.FormSignature,
		PreviousResolvedURL: prev.ResolvedURL,
		NewResolvedURL:      cur.ResolvedURL,
		Details: map[string]any{
			"summary":            strings.Join(names, "; "),
			"previousCapturedAt": prev.CapturedAt,
			"formCount":          cur.FormCount,
			"fieldCount":         cur.FieldCount,
		},
		DetectedAt: now,
	}
}

// mapDocument is the map.json artifact.
type mapDocument struct {
	*domain.FormSnapshot
	LoadDurationMs int64 `json:"loadDurationMs"`
}

// writeArtifacts stores the DOM, the screenshot and the form map under
// <site_id>/<timestamp>/. Failed writes are logged; the capture is kept.
func (m *Monitor) writeArtifacts(ctx context.Context, snap *domain.FormSnapshot, page *Rendered) {
	dir := path.Join(snap.SiteID, snap.CapturedAt.Format("20060102T150405Z"))
	snap.Artifacts = map[string]string{}

	put := func(name, file, contentType string, data []byte) {
		uri, err := m.blob.PutObject(ctx, path.Join(dir, file), contentType, bytes.NewReader(data))
		if err != nil {
			logger.Warn(ctx, "could not write artifact", zap.String("artifact", file), zap.Error(err))

			return
		}
		snap.Artifacts[name] = uri
	}

	put(ArtifactHTML, "map.html", "text/html; charset=utf-8", []byte(page.HTML))
	if len(page.Screenshot) > 0 {
		put(ArtifactScreenshot, "sshot.png", "image/png", page.Screenshot)
	}

	doc, err := json.MarshalIndent(mapDocument{FormSnapshot: snap, LoadDurationMs: snap.LoadDuration.Milliseconds()}, "", "  ")
	if err != nil {
		logger.Warn(ctx, "could not encode form map", zap.Error(err))

		return
	}
	put(ArtifactMap, "map.json", "application/json", doc)
}

// Run processes targets with bounded concurrency. Per-target failures are
// returned in the outcomes; Run itself only fails when ctx is done.
func (m *Monitor) Run(ctx context.Context, mode Mode, targets []Target, concurrency int) ([]Outcome, error) {
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]Outcome, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, t := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			o, err := m.Process(gctx, mode, t)
			if err != nil {
				logger.Error(gctx, "form capture failed", zap.String("siteId", t.SiteID), zap.Error(err))
				outcomes[i] = Outcome{Target: t, Err: err}

				return nil
			}
			outcomes[i] = *o

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return outcomes, nil
}
