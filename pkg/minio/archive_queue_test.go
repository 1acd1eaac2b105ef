package minio

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(object string) *UploadRequest {
	return &UploadRequest{
		BucketName:  "partner-uploads",
		ObjectName:  object,
		Reader:      bytes.NewReader([]byte("xlsx")),
		Size:        4,
		ContentType: "application/octet-stream",
	}
}

func TestArchiveQueue(t *testing.T) {
	t.Run("stores the object and reports done", func(t *testing.T) {
		q := newArchiveQueue(func(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
			return &FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
		}, 1, 4)
		defer q.close()

		id, err := q.enqueue(context.Background(), testRequest("uploads/a.xlsx"))
		require.NoError(t, err)

		st, err := q.wait(id, time.Second)
		require.NoError(t, err)
		assert.Equal(t, TaskDone, st.Status)
		assert.Equal(t, "uploads/a.xlsx", st.Info.ObjectName)
		assert.NoError(t, st.Err)
	})

	t.Run("failure is kept on the task", func(t *testing.T) {
		boom := errors.New("boom")
		q := newArchiveQueue(func(context.Context, *UploadRequest) (*FileInfo, error) {
			return nil, boom
		}, 1, 4)
		defer q.close()

		id, err := q.enqueue(context.Background(), testRequest("uploads/b.xlsx"))
		require.NoError(t, err)

		st, err := q.wait(id, time.Second)
		require.NoError(t, err)
		assert.Equal(t, TaskFailed, st.Status)
		assert.ErrorIs(t, st.Err, boom)
	})

	t.Run("cancelled request context does not cancel the task", func(t *testing.T) {
		var gotErr error
		q := newArchiveQueue(func(ctx context.Context, _ *UploadRequest) (*FileInfo, error) {
			gotErr = ctx.Err()
			return &FileInfo{}, nil
		}, 1, 4)
		defer q.close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		id, err := q.enqueue(ctx, testRequest("uploads/c.xlsx"))
		require.NoError(t, err)

		st, err := q.wait(id, time.Second)
		require.NoError(t, err)
		assert.Equal(t, TaskDone, st.Status)
		assert.NoError(t, gotErr)
	})

	t.Run("full queue rejects instead of blocking", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		var once sync.Once
		q := newArchiveQueue(func(context.Context, *UploadRequest) (*FileInfo, error) {
			once.Do(func() { close(started) })
			<-release
			return &FileInfo{}, nil
		}, 1, 1)

		_, err := q.enqueue(context.Background(), testRequest("uploads/1.xlsx"))
		require.NoError(t, err)
		<-started
		_, err = q.enqueue(context.Background(), testRequest("uploads/2.xlsx"))
		require.NoError(t, err)
		_, err = q.enqueue(context.Background(), testRequest("uploads/3.xlsx"))
		assert.ErrorIs(t, err, ErrQueueFull)

		close(release)
		q.close()
		_, err = q.enqueue(context.Background(), testRequest("uploads/4.xlsx"))
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("unknown task", func(t *testing.T) {
		q := newArchiveQueue(nil, 1, 1)
		defer q.close()
		_, err := q.state("nope")
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("wait times out on a running task", func(t *testing.T) {
		release := make(chan struct{})
		q := newArchiveQueue(func(context.Context, *UploadRequest) (*FileInfo, error) {
			<-release
			return &FileInfo{}, nil
		}, 1, 1)
		defer q.close()
		defer close(release)

		id, err := q.enqueue(context.Background(), testRequest("uploads/slow.xlsx"))
		require.NoError(t, err)
		_, err = q.wait(id, 2*waitPollInterval)
		assert.ErrorIs(t, err, ErrWaitTimeout)
	})
}

func TestArchiveQueueSweep(t *testing.T) {
	q := newArchiveQueue(func(context.Context, *UploadRequest) (*FileInfo, error) {
		return &FileInfo{}, nil
	}, 1, 2)
	defer q.close()

	id, err := q.enqueue(context.Background(), testRequest("uploads/old.xlsx"))
	require.NoError(t, err)
	_, err = q.wait(id, time.Second)
	require.NoError(t, err)

	q.mu.Lock()
	q.now = func() time.Time { return time.Now().Add(2 * taskRetention) }
	q.mu.Unlock()
	q.sweep()

	_, err = q.state(id)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
