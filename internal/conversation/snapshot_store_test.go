package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshotStore(t *testing.T) (*RedisSnapshotStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSnapshotStore(client, time.Hour, nil), mr
}

func TestSnapshotRoundTrip(t *testing.T) {
	store, _ := newTestSnapshotStore(t)
	ctx := context.Background()

	sess := NewSession("snap-1")
	sess.TurnCount = 3
	sess.Phase = PhaseExtractionAttempt
	sess.Memory.ClaimedName = "rajesh"
	sess.Memory.IntentCounts[IntentAskOTP] = 2
	sess.UsedTemplates["pure_stall/ask_otp/0"] = true
	sess.Intel.UPIIDs = []string{"fraud@ybl"}

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Load(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.TurnCount)
	assert.Equal(t, PhaseExtractionAttempt, got.Phase)
	assert.Equal(t, "rajesh", got.Memory.ClaimedName)
	assert.Equal(t, 2, got.Memory.IntentCounts[IntentAskOTP])
	assert.True(t, got.UsedTemplates["pure_stall/ask_otp/0"])
	assert.Equal(t, []string{"fraud@ybl"}, got.Intel.UPIIDs)
	// normalize must leave restored sessions fully usable.
	assert.NotNil(t, got.Persona)
	assert.NotNil(t, got.Memory.TargetAsks)
}

func TestSnapshotLoadMiss(t *testing.T) {
	store, _ := newTestSnapshotStore(t)

	_, err := store.Load(context.Background(), "never-saved")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotLoadCorrupt(t *testing.T) {
	store, mr := newTestSnapshotStore(t)
	require.NoError(t, mr.Set(snapshotKey("bad"), "{not json"))

	_, err := store.Load(context.Background(), "bad")
	assert.True(t, errors.Is(err, ErrSnapshotCorrupt))
}

func TestSnapshotLoadMissingID(t *testing.T) {
	store, mr := newTestSnapshotStore(t)
	require.NoError(t, mr.Set(snapshotKey("noid"), "{}"))

	_, err := store.Load(context.Background(), "noid")
	assert.ErrorIs(t, err, ErrSnapshotCorrupt)
}
