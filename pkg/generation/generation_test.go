package generation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin(t *testing.T) {
	t.Run("new generation cancels the previous one", func(t *testing.T) {
		tr := New()

		ctx1, tk1 := tr.Begin(context.Background(), Key("sid", "dashboard"))
		ctx2, tk2 := tr.Begin(context.Background(), Key("sid", "dashboard"))

		require.ErrorIs(t, ctx1.Err(), context.Canceled)
		assert.NoError(t, ctx2.Err())
		assert.False(t, tk1.Valid())
		assert.ErrorIs(t, tk1.Check(), ErrSuperseded)
		assert.True(t, tk2.Valid())
		assert.Equal(t, uint64(2), tr.Current(Key("sid", "dashboard")))
	})

	t.Run("keys are independent", func(t *testing.T) {
		tr := New()

		ctx1, tk1 := tr.Begin(context.Background(), Key("sid", "dashboard"))
		_, _ = tr.Begin(context.Background(), Key("sid", "country"))

		assert.NoError(t, ctx1.Err())
		assert.True(t, tk1.Valid())
	})

	t.Run("done releases the key without reusing numbers", func(t *testing.T) {
		tr := New()

		ctx1, tk1 := tr.Begin(context.Background(), "k")
		tk1.Done()
		assert.ErrorIs(t, ctx1.Err(), context.Canceled)
		assert.Equal(t, uint64(0), tr.Current("k"))

		_, tk2 := tr.Begin(context.Background(), "k")
		assert.Equal(t, uint64(2), tk2.Gen())
		assert.False(t, tk1.Valid())
		assert.True(t, tk2.Valid())
	})

	t.Run("stale done does not cancel the current generation", func(t *testing.T) {
		tr := New()

		_, tk1 := tr.Begin(context.Background(), "k")
		ctx2, _ := tr.Begin(context.Background(), "k")
		tk1.Done()

		assert.NoError(t, ctx2.Err())
		assert.Equal(t, uint64(2), tr.Current("k"))
	})
}

func TestForget(t *testing.T) {
	tr := New()

	ctx1, _ := tr.Begin(context.Background(), Key("a", "dashboard"))
	ctx2, _ := tr.Begin(context.Background(), Key("b", "dashboard"))
	tr.Forget("a:")

	assert.ErrorIs(t, ctx1.Err(), context.Canceled)
	assert.NoError(t, ctx2.Err())
	assert.Equal(t, uint64(0), tr.Current(Key("a", "dashboard")))
}

func TestGuard(t *testing.T) {
	t.Run("passes the result through", func(t *testing.T) {
		v, err := Guard(context.Background(), New(), "k", func(context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("superseded while running", func(t *testing.T) {
		tr := New()
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)

		go func() {
			_, err := Guard(context.Background(), tr, "k", func(ctx context.Context) (string, error) {
				close(started)
				<-release
				return "stale", ctx.Err()
			})
			done <- err
		}()

		<-started
		v, err := Guard(context.Background(), tr, "k", func(context.Context) (string, error) {
			return "fresh", nil
		})
		close(release)

		require.NoError(t, err)
		assert.Equal(t, "fresh", v)
		assert.ErrorIs(t, <-done, ErrSuperseded)
		assert.Empty(t, tr.(*trackerImpl).entries)
	})

	t.Run("finished keys are released", func(t *testing.T) {
		tr := New()
		for i := 0; i < 1000; i++ {
			_, err := Guard(context.Background(), tr, Key(fmt.Sprintf("sid-%d", i), "dashboard"), func(context.Context) (int, error) {
				return i, nil
			})
			require.NoError(t, err)
		}
		assert.Empty(t, tr.(*trackerImpl).entries)
	})
}
