package storage

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PageCursor points at the last row of a page listed newest first. Rows
// sharing a creation time are told apart by their id.
type PageCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// String encodes the cursor into an opaque URL safe token.
func (c PageCursor) String() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ParsePageCursor decodes a token produced by PageCursor.String.
func ParsePageCursor(token string) (*PageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: cursor is not base64: %w", ErrInvalidArgument, err)
	}

	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("%w: cursor time: %w", ErrInvalidArgument, err)
	}

	rowID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: cursor id: %w", ErrInvalidArgument, err)
	}

	return &PageCursor{CreatedAt: createdAt, ID: rowID}, nil
}
