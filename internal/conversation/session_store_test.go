package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStoreAcquireCreates(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess, created, release := store.Acquire("s1")
	assert.True(t, created)
	assert.Equal(t, "s1", sess.ID)
	release()

	sess2, created2, release2 := store.Acquire("s1")
	assert.False(t, created2)
	assert.Same(t, sess, sess2)
	release2()

	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreSerializesSameSession(t *testing.T) {
	store := NewSessionStore(time.Hour)

	const turns = 50
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, _, release := store.Acquire("shared")
			defer release()
			// Unsynchronized increment; the per-session lock must make
			// it safe.
			sess.TurnCount++
		}()
	}
	wg.Wait()

	sess, _, release := store.Acquire("shared")
	defer release()
	assert.Equal(t, turns, sess.TurnCount)
}

func TestSessionStoreReplace(t *testing.T) {
	store := NewSessionStore(time.Hour)

	_, _, release := store.Acquire("r1")
	restored := NewSession("r1")
	restored.TurnCount = 7
	store.Replace(restored)
	release()

	sess, created, release2 := store.Acquire("r1")
	defer release2()
	assert.False(t, created)
	assert.Equal(t, 7, sess.TurnCount)
}
