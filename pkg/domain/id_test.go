package domain_test

import (
	"encoding/json"
	"testing"

	"directorybolt/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDsMarshalAsStrings(t *testing.T) {
	raw := uuid.MustParse("6f1d4c36-0b7e-4a57-9a35-0d2b6f3c9e11")
	job := domain.QueueJob{ID: domain.QueueJobID(raw), CustomerID: domain.CustomerID(raw)}

	b, err := json.Marshal(job)
	require.NoError(t, err)
	require.Contains(t, string(b), `"id":"6f1d4c36-0b7e-4a57-9a35-0d2b6f3c9e11"`)
	require.Contains(t, string(b), `"customerId":"6f1d4c36-0b7e-4a57-9a35-0d2b6f3c9e11"`)

	var decoded struct {
		CustomerID domain.CustomerID `json:"customerId"`
		UserID     *domain.UserID    `json:"userId"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"customerId":"6f1d4c36-0b7e-4a57-9a35-0d2b6f3c9e11"}`), &decoded))
	require.Equal(t, domain.CustomerID(raw), decoded.CustomerID)
	require.Nil(t, decoded.UserID)

	require.Error(t, json.Unmarshal([]byte(`{"customerId":"nope"}`), &decoded))
}
