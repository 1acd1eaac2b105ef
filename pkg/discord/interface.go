package discord

import (
	"context"
	"errors"
	"time"

	pkghttp "partner-dashboard-srv/pkg/http"
	"partner-dashboard-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord reports unexpected failures to a Discord channel. Implementations are safe for concurrent use.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
}

// DiscordWebhook identifies the target webhook. BaseURL defaults to the Discord API.
type DiscordWebhook struct {
	ID      string
	Token   string
	BaseURL string
}

// New returns a reporter posting to webhook.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	base := webhook.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &discordImpl{
		l:   l,
		url: base + "/" + webhook.ID + "/" + webhook.Token,
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   10 * time.Second,
			Retries:   2,
			RetryWait: time.Second,
		}),
		now: time.Now,
	}, nil
}
