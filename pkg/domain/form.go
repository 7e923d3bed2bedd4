package domain

import "time"

// FormField describes one input of a captured form.
type FormField struct {
	Name         string   `json:"name,omitempty"`
	ID           string   `json:"id,omitempty"`
	Tag          string   `json:"tag"`
	Type         string   `json:"type,omitempty"`
	Required     bool     `json:"required"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	AriaRequired string   `json:"ariaRequired,omitempty"`
	Autocomplete string   `json:"autocomplete,omitempty"`
}

// FormSubmitter describes an element that submits or advances a form.
type FormSubmitter struct {
	Selector string `json:"selector"`
	Text     string `json:"text,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Form is a form found on a directory submission page.
type Form struct {
	Index      int               `json:"index"`
	Action     string            `json:"action,omitempty"`
	Method     string            `json:"method"`
	Dataset    map[string]string `json:"dataset,omitempty"`
	Fields     []FormField       `json:"fields"`
	Submitters []FormSubmitter   `json:"submitters,omitempty"`
}

// SnapshotStatus tells whether a capture succeeded.
type SnapshotStatus string

const (
	SnapshotStatusOK    SnapshotStatus = "ok"
	SnapshotStatusError SnapshotStatus = "error"
)

// FormSnapshot is a capture of a directory submission page.
type FormSnapshot struct {
	ID          int64          `json:"id,omitempty"`
	SiteID      string         `json:"siteId"`
	DirectoryID string         `json:"directoryId,omitempty"`
	TargetURL   string         `json:"targetUrl"`
	ResolvedURL string         `json:"resolvedUrl,omitempty"`
	Status      SnapshotStatus `json:"status"`
	Error       string         `json:"error,omitempty"`

	DOMChecksum     string   `json:"domChecksum,omitempty"`
	FormSignature   string   `json:"formSignature,omitempty"`
	FormCount       int      `json:"formCount"`
	FieldCount      int      `json:"fieldCount"`
	HasCaptcha      bool     `json:"hasCaptcha"`
	LikelyMultiStep bool     `json:"likelyMultiStep"`
	StepSignals     []string `json:"stepSignals,omitempty"`
	Forms           []Form   `json:"forms,omitempty"`
	// Artifacts maps an artifact name (html, screenshot, map) to its blob URI.
	Artifacts    map[string]string `json:"artifacts,omitempty"`
	LoadDuration time.Duration     `json:"-"`

	CapturedAt time.Time `json:"capturedAt"`
}

// FormChangeType names an aspect of a page that changed between captures.
type FormChangeType string

const (
	FormChangeDOM      FormChangeType = "DOM"
	FormChangeForms    FormChangeType = "FORMS"
	FormChangeCaptcha  FormChangeType = "CAPTCHA"
	FormChangeStepHint FormChangeType = "STEP_HINT"
	FormChangeURL      FormChangeType = "URL"
)

// FormChangeEvent records a detected change of a submission page.
type FormChangeEvent struct {
	ID                  int64            `json:"id,omitempty"`
	SiteID              string           `json:"siteId"`
	Level               string           `json:"level"`
	ChangeTypes         []FormChangeType `json:"changeTypes"`
	PreviousChecksum    string           `json:"previousChecksum,omitempty"`
	NewChecksum         string           `json:"newChecksum,omitempty"`
	PreviousSignature   string           `json:"previousSignature,omitempty"`
	NewSignature        string           `json:"newSignature,omitempty"`
	PreviousResolvedURL string           `json:"previousResolvedUrl,omitempty"`
	NewResolvedURL      string           `json:"newResolvedUrl,omitempty"`
	Details             map[string]any   `json:"details,omitempty"`
	DetectedAt          time.Time        `json:"detectedAt"`
}
