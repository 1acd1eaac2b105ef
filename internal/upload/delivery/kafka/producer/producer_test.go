package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/upload"
	kafkaDelivery "partner-dashboard-srv/internal/upload/delivery/kafka"
	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	key, value []byte
	err        error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}
func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublishUploadCompleted(t *testing.T) {
	at := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	event := upload.UploadCompletedEvent{
		FileID:        "f1",
		Source:        model.SourceDynamicWorks,
		Filename:      "dw.xlsx",
		SessionID:     "sid-1",
		ArchiveObject: "uploads/dynamicWorks/f1/dw.xlsx",
		SizeBytes:     42,
		UploadedAt:    at,
	}

	t.Run("keyed by file id", func(t *testing.T) {
		fp := &fakeProducer{}
		require.NoError(t, New(log.NewNop(), fp).PublishUploadCompleted(context.Background(), event))
		assert.Equal(t, "f1", string(fp.key))

		var msg kafkaDelivery.UploadCompletedMessage
		require.NoError(t, json.Unmarshal(fp.value, &msg))
		assert.Equal(t, "dynamicWorks", msg.Source)
		assert.Equal(t, int64(42), msg.Size)
		assert.True(t, at.Equal(msg.UploadedAt))
	})

	t.Run("publish failure", func(t *testing.T) {
		fp := &fakeProducer{err: errors.New("broker down")}
		err := New(log.NewNop(), fp).PublishUploadCompleted(context.Background(), event)
		assert.ErrorContains(t, err, "broker down")
	})
}
