// Package blob stores reports and capture artifacts outside the database.
//
//go:generate mockgen -package mockblob -source=interface.go -destination=mock/mockblob.go
package blob

import (
	"context"
	"io"
)

// Store writes objects and returns a URI that locates them.
type Store interface {
	// PutObject writes r under path. contentType may be empty.
	PutObject(ctx context.Context, path, contentType string, r io.Reader) (string, error)
}
