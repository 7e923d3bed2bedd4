package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"directorybolt/pkg/domain"

	"github.com/google/uuid"
)

// jsonb holds a raw JSONB column. It is written as a text literal because goqu
// would otherwise render a byte slice as a value list.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}

	return nil
}

func marshalJSONB(v any) (jsonb, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal jsonb: %w", err)
	}

	return b, nil
}

func unmarshalJSONB(j jsonb, v any) error {
	if len(j) == 0 {
		return nil
	}
	if err := json.Unmarshal(j, v); err != nil {
		return fmt.Errorf("could not unmarshal jsonb: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullUserID(id *domain.UserID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}

	return uuid.NullUUID{UUID: uuid.UUID(*id), Valid: true}
}

func userIDPtr(id uuid.NullUUID) *domain.UserID {
	if !id.Valid {
		return nil
	}
	uid := domain.UserID(id.UUID)

	return &uid
}

type PgUser struct {
	ID           uuid.UUID      `db:"id"            goqu:"skipinsert"`
	Email        string         `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	FullName     string         `db:"full_name"`
	Tier         string         `db:"tier"`

	DirectoriesUsed int `db:"directories_used" goqu:"skipinsert"`
	AnalysesUsed    int `db:"analyses_used"    goqu:"skipinsert"`

	StripeCustomerID     sql.NullString `db:"stripe_customer_id"`
	StripeSubscriptionID sql.NullString `db:"stripe_subscription_id"`
	SubscriptionStatus   sql.NullString `db:"subscription_status"`

	LastLoginAt sql.NullTime `db:"last_login_at" goqu:"skipinsert"`
	CreatedAt   time.Time    `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:                   domain.UserID(p.ID),
		Email:                p.Email,
		PasswordHash:         p.PasswordHash.String,
		FullName:             p.FullName,
		Tier:                 domain.Tier(p.Tier),
		DirectoriesUsed:      p.DirectoriesUsed,
		AnalysesUsed:         p.AnalysesUsed,
		StripeCustomerID:     p.StripeCustomerID.String,
		StripeSubscriptionID: p.StripeSubscriptionID.String,
		SubscriptionStatus:   p.SubscriptionStatus.String,
		LastLoginAt:          p.LastLoginAt.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	tier := u.Tier
	if tier == "" {
		tier = domain.TierFree
	}

	*p = PgUser{
		ID:                   uuid.UUID(u.ID),
		Email:                u.Email,
		PasswordHash:         nullString(u.PasswordHash),
		FullName:             u.FullName,
		Tier:                 string(tier),
		StripeCustomerID:     nullString(u.StripeCustomerID),
		StripeSubscriptionID: nullString(u.StripeSubscriptionID),
		SubscriptionStatus:   nullString(u.SubscriptionStatus),
	}
}

type PgSession struct {
	TokenHash string         `db:"token_hash"`
	UserID    uuid.UUID      `db:"user_id"`
	ExpiresAt time.Time      `db:"expires_at"`
	UserAgent sql.NullString `db:"user_agent"`
	IP        sql.NullString `db:"ip"`
	CreatedAt time.Time      `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() *domain.Session {
	return &domain.Session{
		TokenHash: p.TokenHash,
		UserID:    domain.UserID(p.UserID),
		ExpiresAt: p.ExpiresAt,
		UserAgent: p.UserAgent.String,
		IP:        p.IP.String,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSession) FromDomain(s domain.Session) {
	*p = PgSession{
		TokenHash: s.TokenHash,
		UserID:    uuid.UUID(s.UserID),
		ExpiresAt: s.ExpiresAt,
		UserAgent: nullString(s.UserAgent),
		IP:        nullString(s.IP),
	}
}

type PgCustomer struct {
	ID     uuid.UUID     `db:"id"      goqu:"skipinsert"`
	UserID uuid.NullUUID `db:"user_id"`

	BusinessName string         `db:"business_name"`
	Email        string         `db:"email"`
	Phone        sql.NullString `db:"phone"`
	Website      sql.NullString `db:"website"`
	Address      sql.NullString `db:"address"`
	City         sql.NullString `db:"city"`
	State        sql.NullString `db:"state"`
	Zip          sql.NullString `db:"zip"`
	Description  sql.NullString `db:"description"`
	Category     sql.NullString `db:"category"`

	Tier   string `db:"tier"`
	Status string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCustomer) ToDomain() *domain.Customer {
	return &domain.Customer{
		ID:           domain.CustomerID(p.ID),
		UserID:       userIDPtr(p.UserID),
		BusinessName: p.BusinessName,
		Email:        p.Email,
		Phone:        p.Phone.String,
		Website:      p.Website.String,
		Address:      p.Address.String,
		City:         p.City.String,
		State:        p.State.String,
		Zip:          p.Zip.String,
		Description:  p.Description.String,
		Category:     p.Category.String,
		Tier:         domain.Tier(p.Tier),
		Status:       domain.CustomerStatus(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgCustomer) FromDomain(c domain.Customer) {
	status := c.Status
	if status == "" {
		status = domain.CustomerStatusPending
	}

	*p = PgCustomer{
		ID:           uuid.UUID(c.ID),
		UserID:       nullUserID(c.UserID),
		BusinessName: c.BusinessName,
		Email:        c.Email,
		Phone:        nullString(c.Phone),
		Website:      nullString(c.Website),
		Address:      nullString(c.Address),
		City:         nullString(c.City),
		State:        nullString(c.State),
		Zip:          nullString(c.Zip),
		Description:  nullString(c.Description),
		Category:     nullString(c.Category),
		Tier:         string(c.Tier),
		Status:       string(status),
	}
}

type PgDirectory struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	URL           string         `db:"url"`
	SubmissionURL sql.NullString `db:"submission_url"`
	Category      string         `db:"category"`

	DomainAuthority int    `db:"domain_authority"`
	Difficulty      string `db:"difficulty"`
	Priority        string `db:"priority"`
	Tier            string `db:"tier"`

	TrafficPotential     int    `db:"traffic_potential"`
	RequiresRegistration bool   `db:"requires_registration"`
	ApprovalTime         string `db:"approval_time"`
	HasCaptcha           bool   `db:"has_captcha"`
	IsActive             bool   `db:"is_active"`

	Accessible     sql.NullBool `db:"accessible"       goqu:"skipinsert"`
	LastVerifiedAt sql.NullTime `db:"last_verified_at" goqu:"skipinsert"`

	AuthorityCheckedAt sql.NullTime `db:"authority_checked_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDirectory) ToDomain() *domain.Directory {
	d := &domain.Directory{
		ID:                   p.ID,
		Name:                 p.Name,
		URL:                  p.URL,
		SubmissionURL:        p.SubmissionURL.String,
		Category:             p.Category,
		DomainAuthority:      p.DomainAuthority,
		Difficulty:           domain.Difficulty(p.Difficulty),
		Priority:             domain.Priority(p.Priority),
		Tier:                 domain.DirectoryTier(p.Tier),
		TrafficPotential:     p.TrafficPotential,
		RequiresRegistration: p.RequiresRegistration,
		ApprovalTime:         p.ApprovalTime,
		HasCaptcha:           p.HasCaptcha,
		IsActive:             p.IsActive,
		LastVerifiedAt:       p.LastVerifiedAt.Time,
		AuthorityCheckedAt:   p.AuthorityCheckedAt.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
	if p.Accessible.Valid {
		accessible := p.Accessible.Bool
		d.Accessible = &accessible
	}

	return d
}

func (p *PgDirectory) FromDomain(d domain.Directory) {
	*p = PgDirectory{
		ID:                   d.ID,
		Name:                 d.Name,
		URL:                  d.URL,
		SubmissionURL:        nullString(d.SubmissionURL),
		Category:             d.Category,
		DomainAuthority:      d.DomainAuthority,
		Difficulty:           string(d.Difficulty),
		Priority:             string(d.Priority),
		Tier:                 string(d.Tier),
		TrafficPotential:     d.TrafficPotential,
		RequiresRegistration: d.RequiresRegistration,
		ApprovalTime:         d.ApprovalTime,
		HasCaptcha:           d.HasCaptcha,
		IsActive:             d.IsActive,
		AuthorityCheckedAt:   nullTime(d.AuthorityCheckedAt),
	}
}

type PgQueueJob struct {
	ID             uuid.UUID `db:"id"            goqu:"skipinsert"`
	CustomerID     uuid.UUID `db:"customer_id"`
	BusinessName   string    `db:"business_name"`
	Tier           string    `db:"tier"`
	DirectoryLimit int       `db:"directory_limit"`
	PriorityLevel  int       `db:"priority_level"`
	Status         string    `db:"status"`

	DirectoriesCompleted int            `db:"directories_completed" goqu:"skipinsert"`
	DirectoriesFailed    int            `db:"directories_failed"    goqu:"skipinsert"`
	ErrorMessage         sql.NullString `db:"error_message"         goqu:"skipinsert"`
	Attempts             int            `db:"attempts"              goqu:"skipinsert"`

	StartedAt   sql.NullTime `db:"started_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgQueueJob) ToDomain() *domain.QueueJob {
	return &domain.QueueJob{
		ID:                   domain.QueueJobID(p.ID),
		CustomerID:           domain.CustomerID(p.CustomerID),
		BusinessName:         p.BusinessName,
		Tier:                 domain.Tier(p.Tier),
		DirectoryLimit:       p.DirectoryLimit,
		PriorityLevel:        p.PriorityLevel,
		Status:               domain.QueueJobStatus(p.Status),
		DirectoriesCompleted: p.DirectoriesCompleted,
		DirectoriesFailed:    p.DirectoriesFailed,
		ErrorMessage:         p.ErrorMessage.String,
		Attempts:             p.Attempts,
		StartedAt:            p.StartedAt.Time,
		CompletedAt:          p.CompletedAt.Time,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
	}
}

func (p *PgQueueJob) FromDomain(j domain.QueueJob) {
	status := j.Status
	if status == "" {
		status = domain.QueueJobStatusQueued
	}

	*p = PgQueueJob{
		ID:             uuid.UUID(j.ID),
		CustomerID:     uuid.UUID(j.CustomerID),
		BusinessName:   j.BusinessName,
		Tier:           string(j.Tier),
		DirectoryLimit: j.DirectoryLimit,
		PriorityLevel:  j.PriorityLevel,
		Status:         string(status),
	}
}

func pgQueueJobsToDomain(rows []PgQueueJob) []domain.QueueJob {
	out := make([]domain.QueueJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

type PgSubmission struct {
	ID            uuid.UUID      `db:"id"`
	JobID         uuid.UUID      `db:"job_id"`
	CustomerID    uuid.UUID      `db:"customer_id"`
	DirectoryName string         `db:"directory_name"`
	Status        string         `db:"status"`
	ListingURL    sql.NullString `db:"listing_url"`
	ErrorMessage  sql.NullString `db:"error_message"`
	SubmittedAt   sql.NullTime   `db:"submitted_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

func (p *PgSubmission) ToDomain() *domain.Submission {
	return &domain.Submission{
		ID:            p.ID,
		JobID:         domain.QueueJobID(p.JobID),
		CustomerID:    domain.CustomerID(p.CustomerID),
		DirectoryName: p.DirectoryName,
		Status:        domain.SubmissionStatus(p.Status),
		ListingURL:    p.ListingURL.String,
		ErrorMessage:  p.ErrorMessage.String,
		SubmittedAt:   p.SubmittedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

type PgPurchase struct {
	ID         uuid.UUID     `db:"id"          goqu:"skipinsert"`
	UserID     uuid.NullUUID `db:"user_id"`
	CustomerID uuid.NullUUID `db:"customer_id"`
	Tier       string        `db:"tier"`

	AmountCents int64  `db:"amount_cents"`
	Currency    string `db:"currency"`

	CheckoutSessionID sql.NullString `db:"checkout_session_id"`
	PaymentIntentID   sql.NullString `db:"payment_intent_id"`
	CustomerEmail     string         `db:"customer_email"`
	Status            string         `db:"status"`

	PaidAt    sql.NullTime `db:"paid_at"    goqu:"skipinsert"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPurchase) ToDomain() *domain.Purchase {
	purchase := &domain.Purchase{
		ID:                domain.PurchaseID(p.ID),
		UserID:            userIDPtr(p.UserID),
		Tier:              domain.Tier(p.Tier),
		AmountCents:       p.AmountCents,
		Currency:          p.Currency,
		CheckoutSessionID: p.CheckoutSessionID.String,
		PaymentIntentID:   p.PaymentIntentID.String,
		CustomerEmail:     p.CustomerEmail,
		Status:            domain.PurchaseStatus(p.Status),
		PaidAt:            p.PaidAt.Time,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}
	if p.CustomerID.Valid {
		cid := domain.CustomerID(p.CustomerID.UUID)
		purchase.CustomerID = &cid
	}

	return purchase
}

func (p *PgPurchase) FromDomain(purchase domain.Purchase) {
	status := purchase.Status
	if status == "" {
		status = domain.PurchaseStatusPending
	}
	currency := purchase.Currency
	if currency == "" {
		currency = "usd"
	}

	*p = PgPurchase{
		ID:                uuid.UUID(purchase.ID),
		UserID:            nullUserID(purchase.UserID),
		Tier:              string(purchase.Tier),
		AmountCents:       purchase.AmountCents,
		Currency:          currency,
		CheckoutSessionID: nullString(purchase.CheckoutSessionID),
		PaymentIntentID:   nullString(purchase.PaymentIntentID),
		CustomerEmail:     purchase.CustomerEmail,
		Status:            string(status),
	}
	if purchase.CustomerID != nil {
		p.CustomerID = uuid.NullUUID{UUID: uuid.UUID(*purchase.CustomerID), Valid: true}
	}
}

type PgStaffUser struct {
	ID           uuid.UUID    `db:"id"            goqu:"skipinsert"`
	Username     string       `db:"username"`
	PasswordHash string       `db:"password_hash"`
	Role         string       `db:"role"`
	CreatedAt    time.Time    `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    sql.NullTime `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgStaffUser) ToDomain() *domain.StaffUser {
	return &domain.StaffUser{
		ID:           p.ID,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
		Role:         domain.StaffRole(p.Role),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

type PgAPIKey struct {
	ID         uuid.UUID    `db:"id"           goqu:"skipinsert"`
	Name       string       `db:"name"`
	Role       string       `db:"role"`
	KeyHash    string       `db:"key_hash"`
	LastUsedAt sql.NullTime `db:"last_used_at" goqu:"skipinsert"`
	RevokedAt  sql.NullTime `db:"revoked_at"   goqu:"skipinsert"`
	CreatedAt  time.Time    `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgAPIKey) ToDomain() *domain.APIKey {
	return &domain.APIKey{
		ID:         p.ID,
		Name:       p.Name,
		Role:       domain.StaffRole(p.Role),
		KeyHash:    p.KeyHash,
		LastUsedAt: p.LastUsedAt.Time,
		RevokedAt:  p.RevokedAt.Time,
		CreatedAt:  p.CreatedAt,
	}
}

type PgFormSnapshot struct {
	ID          int64          `db:"id"           goqu:"skipinsert"`
	SiteID      string         `db:"site_id"`
	DirectoryID sql.NullString `db:"directory_id"`
	TargetURL   string         `db:"target_url"`
	ResolvedURL sql.NullString `db:"resolved_url"`
	Status      string         `db:"status"`
	Error       sql.NullString `db:"error"`

	DOMChecksum     sql.NullString `db:"dom_checksum"`
	FormSignature   sql.NullString `db:"form_signature"`
	FormCount       int            `db:"form_count"`
	FieldCount      int            `db:"field_count"`
	HasCaptcha      bool           `db:"has_captcha"`
	LikelyMultiStep bool           `db:"likely_multi_step"`
	StepSignals     jsonb          `db:"step_signals"`
	Forms           jsonb          `db:"forms"`
	Artifacts       jsonb          `db:"artifacts"`
	LoadDurationMS  int64          `db:"load_duration_ms"`

	CapturedAt time.Time `db:"captured_at"`
}

func (p *PgFormSnapshot) ToDomain() (*domain.FormSnapshot, error) {
	s := &domain.FormSnapshot{
		ID:              p.ID,
		SiteID:          p.SiteID,
		DirectoryID:     p.DirectoryID.String,
		TargetURL:       p.TargetURL,
		ResolvedURL:     p.ResolvedURL.String,
		Status:          domain.SnapshotStatus(p.Status),
		Error:           p.Error.String,
		DOMChecksum:     p.DOMChecksum.String,
		FormSignature:   p.FormSignature.String,
		FormCount:       p.FormCount,
		FieldCount:      p.FieldCount,
		HasCaptcha:      p.HasCaptcha,
		LikelyMultiStep: p.LikelyMultiStep,
		LoadDuration:    time.Duration(p.LoadDurationMS) * time.Millisecond,
		CapturedAt:      p.CapturedAt,
	}
	if err := unmarshalJSONB(p.StepSignals, &s.StepSignals); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(p.Forms, &s.Forms); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(p.Artifacts, &s.Artifacts); err != nil {
		return nil, err
	}

	return s, nil
}

func (p *PgFormSnapshot) FromDomain(s domain.FormSnapshot) error {
	signals := s.StepSignals
	if signals == nil {
		signals = []string{}
	}
	forms := s.Forms
	if forms == nil {
		forms = []domain.Form{}
	}
	artifacts := s.Artifacts
	if artifacts == nil {
		artifacts = map[string]string{}
	}

	stepSignals, err := marshalJSONB(signals)
	if err != nil {
		return err
	}
	formsJSON, err := marshalJSONB(forms)
	if err != nil {
		return err
	}
	artifactsJSON, err := marshalJSONB(artifacts)
	if err != nil {
		return err
	}

	capturedAt := s.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now().UTC()
	}

	*p = PgFormSnapshot{
		SiteID:          s.SiteID,
		DirectoryID:     nullString(s.DirectoryID),
		TargetURL:       s.TargetURL,
		ResolvedURL:     nullString(s.ResolvedURL),
		Status:          string(s.Status),
		Error:           nullString(s.Error),
		DOMChecksum:     nullString(s.DOMChecksum),
		FormSignature:   nullString(s.FormSignature),
		FormCount:       s.FormCount,
		FieldCount:      s.FieldCount,
		HasCaptcha:      s.HasCaptcha,
		LikelyMultiStep: s.LikelyMultiStep,
		StepSignals:     stepSignals,
		Forms:           formsJSON,
		Artifacts:       artifactsJSON,
		LoadDurationMS:  s.LoadDuration.Milliseconds(),
		CapturedAt:      capturedAt,
	}

	return nil
}

type PgFormChange struct {
	ID                  int64          `db:"id"                    goqu:"skipinsert"`
	SiteID              string         `db:"site_id"`
	ChangeTypes         jsonb          `db:"change_types"`
	PreviousChecksum    sql.NullString `db:"previous_checksum"`
	NewChecksum         sql.NullString `db:"new_checksum"`
	PreviousSignature   sql.NullString `db:"previous_signature"`
	NewSignature        sql.NullString `db:"new_signature"`
	PreviousResolvedURL sql.NullString `db:"previous_resolved_url"`
	NewResolvedURL      sql.NullString `db:"new_resolved_url"`
	Details             jsonb          `db:"details"`
	DetectedAt          time.Time      `db:"detected_at"`
}

// changeLevel is the level of every stored change event.
const changeLevel = "CHANGE"

func (p *PgFormChange) ToDomain() (*domain.FormChangeEvent, error) {
	e := &domain.FormChangeEvent{
		ID:                  p.ID,
		SiteID:              p.SiteID,
		Level:               changeLevel,
		PreviousChecksum:    p.PreviousChecksum.String,
		NewChecksum:         p.NewChecksum.String,
		PreviousSignature:   p.PreviousSignature.String,
		NewSignature:        p.NewSignature.String,
		PreviousResolvedURL: p.PreviousResolvedURL.String,
		NewResolvedURL:      p.NewResolvedURL.String,
		DetectedAt:          p.DetectedAt,
	}
	if err := unmarshalJSONB(p.ChangeTypes, &e.ChangeTypes); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(p.Details, &e.Details); err != nil {
		return nil, err
	}

	return e, nil
}

func (p *PgFormChange) FromDomain(e domain.FormChangeEvent) error {
	types := e.ChangeTypes
	if types == nil {
		types = []domain.FormChangeType{}
	}
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}

	typesJSON, err := marshalJSONB(types)
	if err != nil {
		return err
	}
	detailsJSON, err := marshalJSONB(details)
	if err != nil {
		return err
	}

	detectedAt := e.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = time.Now().UTC()
	}

	*p = PgFormChange{
		SiteID:              e.SiteID,
		ChangeTypes:         typesJSON,
		PreviousChecksum:    nullString(e.PreviousChecksum),
		NewChecksum:         nullString(e.NewChecksum),
		PreviousSignature:   nullString(e.PreviousSignature),
		NewSignature:        nullString(e.NewSignature),
		PreviousResolvedURL: nullString(e.PreviousResolvedURL),
		NewResolvedURL:      nullString(e.NewResolvedURL),
		Details:             detailsJSON,
		DetectedAt:          detectedAt,
	}

	return nil
}
