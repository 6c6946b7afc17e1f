package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okovalenko/filmfortoday/pkg/discovery"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	_, err := r.ServiceAddresses(ctx, "rating")
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, r.Register(ctx, "rating-1", "rating", "localhost:8082"))
	require.NoError(t, r.Register(ctx, "rating-2", "rating", "localhost:8092"))

	addrs, err := r.ServiceAddresses(ctx, "rating")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"localhost:8082", "localhost:8092"}, addrs)

	require.NoError(t, r.Deregister(ctx, "rating-2", "rating"))
	addrs, err = r.ServiceAddresses(ctx, "rating")
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost:8082"}, addrs)
}

func TestReportHealthyState(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	assert.Error(t, r.ReportHealthyState("rating-1", "rating"))

	require.NoError(t, r.Register(ctx, "rating-1", "rating", "localhost:8082"))
	assert.NoError(t, r.ReportHealthyState("rating-1", "rating"))
	assert.Error(t, r.ReportHealthyState("rating-2", "rating"))
}
