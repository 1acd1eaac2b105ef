package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"partner-dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(log.NewNop(), &DiscordWebhook{ID: "id"})
	assert.ErrorIs(t, err, errWebhookRequired)

	_, err = New(log.NewNop(), nil)
	assert.ErrorIs(t, err, errWebhookRequired)
}

func TestReportBug(t *testing.T) {
	t.Run("posts an error embed", func(t *testing.T) {
		var got webhookPayload
		var path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "tok", BaseURL: srv.URL})
		require.NoError(t, err)
		require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", maxDescriptionLen+10)))

		assert.Equal(t, "/id/tok", path)
		require.Len(t, got.Embeds, 1)
		assert.Equal(t, bugTitle, got.Embeds[0].Title)
		assert.Len(t, got.Embeds[0].Description, maxDescriptionLen)
		assert.True(t, strings.HasSuffix(got.Embeds[0].Description, "..."))
	})

	t.Run("client error is returned", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "tok", BaseURL: srv.URL})
		require.NoError(t, err)
		assert.Error(t, d.ReportBug(context.Background(), "boom"))
	})
}
