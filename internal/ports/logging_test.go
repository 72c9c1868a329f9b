package ports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "abc")
	require.Equal(t, "abc", GetCorrelationID(ctx))
	require.Empty(t, GetCorrelationID(context.Background()))
}

func TestGenerateCorrelationID(t *testing.T) {
	t.Parallel()

	id := GenerateCorrelationID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.NotEqual(t, id, GenerateCorrelationID())
}
