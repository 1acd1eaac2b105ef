package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkghttp "partner-dashboard-srv/pkg/http"
	"partner-dashboard-srv/pkg/log"
)

const (
	defaultBaseURL = "https://discord.com/api/webhooks"
	username       = "partner-dashboard-srv"
	bugTitle       = "Unexpected error"
	colorError     = 0xE74C3C

	// Discord rejects longer embed descriptions.
	maxDescriptionLen = 4096
)

type discordImpl struct {
	l      log.Logger
	url    string
	client pkghttp.IClient
	now    func() time.Time
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
}

type webhookPayload struct {
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	if len(message) > maxDescriptionLen {
		message = message[:maxDescriptionLen-3] + "..."
	}
	payload := webhookPayload{
		Username: username,
		Embeds: []embed{{
			Title:       bugTitle,
			Description: message,
			Color:       colorError,
			Timestamp:   d.now().UTC().Format(time.RFC3339),
		}},
	}

	_, status, err := d.client.Post(ctx, d.url, payload, nil)
	if err == nil && status >= http.StatusMultipleChoices {
		err = fmt.Errorf("unexpected status %d", status)
	}
	if err != nil {
		d.l.Warnf(ctx, "pkg.discord.ReportBug: webhook delivery failed: %v", err)
		return fmt.Errorf("discord: report bug: %w", err)
	}
	return nil
}
