package vitals

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctigo/models"
)

func newTestProvider(t *testing.T) (*RedisProvider, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisProvider(client, 2*time.Hour), mr
}

func TestPublishAndGetSnapshot(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	snap := models.VitalsSnapshot{
		Timestamp:       time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
		SystolicBP:      118,
		DiastolicBP:     76,
		BodyTemperature: 98.4,
	}
	require.NoError(t, p.Publish(ctx, "sess-1", snap))

	got, err := p.GetSnapshot(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap, *got)
}

func TestPublishStampsMissingTimestamp(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, "sess-2", models.VitalsSnapshot{SystolicBP: 120}))

	got, err := p.GetSnapshot(ctx, "sess-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Timestamp.IsZero())
}

func TestPublishReplacesEarlierSnapshot(t *testing.T) {
	p, _ := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, "sess-3", models.VitalsSnapshot{SystolicBP: 118}))
	require.NoError(t, p.Publish(ctx, "sess-3", models.VitalsSnapshot{SystolicBP: 131}))

	got, err := p.GetSnapshot(ctx, "sess-3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, float64(131), got.SystolicBP)
}

func TestGetSnapshotAbsent(t *testing.T) {
	p, _ := newTestProvider(t)

	got, err := p.GetSnapshot(context.Background(), "sess-missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotExpires(t *testing.T) {
	p, mr := newTestProvider(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, "sess-4", models.VitalsSnapshot{SystolicBP: 118}))
	mr.FastForward(3 * time.Hour)

	got, err := p.GetSnapshot(ctx, "sess-4")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
