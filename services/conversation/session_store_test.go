package conversation

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

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 30*time.Minute), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := &models.Session{
		SessionID:   "sess-1",
		Step:        models.StepAskSymptoms,
		BookingType: models.BookingTypeNormal,
		PatientName: "Rakesh",
		Symptoms:    []string{"Fever"},
		PatientDetails: map[string]string{
			"patient_phone": "+91-98300-00000",
		},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, got.SessionID)
	assert.Equal(t, session.Step, got.Step)
	assert.Equal(t, session.PatientName, got.PatientName)
	assert.Equal(t, session.Symptoms, got.Symptoms)
	assert.Equal(t, session.PatientDetails, got.PatientDetails)
}

func TestRedisStoreMissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "sess-missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{SessionID: "sess-2", Step: models.StepInitial}))
	mr.FastForward(31 * time.Minute)

	_, err := store.Get(ctx, "sess-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreSaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	session := &models.Session{SessionID: "sess-3", Step: models.StepInitial}
	require.NoError(t, store.Save(ctx, session))
	mr.FastForward(20 * time.Minute)

	session.Step = models.StepAskName
	require.NoError(t, store.Save(ctx, session))
	mr.FastForward(20 * time.Minute)

	got, err := store.Get(ctx, "sess-3")
	require.NoError(t, err)
	assert.Equal(t, models.StepAskName, got.Step)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{SessionID: "sess-4", Step: models.StepInitial}))
	require.NoError(t, store.Delete(ctx, "sess-4"))

	_, err := store.Get(ctx, "sess-4")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "sess-4"))
}
