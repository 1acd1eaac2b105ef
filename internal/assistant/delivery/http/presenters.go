package http

import (
	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/model"
)

type getReq struct {
	Source string `form:"source"`
}

type sendReq struct {
	Source string `json:"source"`
	Text   string `json:"text" binding:"required"`
}

type messageResp struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type transcriptResp struct {
	Source   model.DataSource `json:"source"`
	HasFile  bool             `json:"hasFile"`
	Messages []messageResp    `json:"messages"`
}

type assistantResp struct {
	transcriptResp
	Greeting  string             `json:"greeting"`
	Examples  []string           `json:"examples"`
	Available []model.DataSource `json:"availableSources"`
}

type widgetResp struct {
	Messages []messageResp `json:"messages"`
}

func toMessages(in []model.ChatMessage) []messageResp {
	out := make([]messageResp, 0, len(in))
	for _, m := range in {
		out = append(out, messageResp{Sender: string(m.Sender), Text: m.Text})
	}
	return out
}

func (h *handler) newTranscriptResp(o assistant.TranscriptOutput) transcriptResp {
	return transcriptResp{
		Source:   o.Resolution.Source,
		HasFile:  o.Resolution.HasFile(),
		Messages: toMessages(o.Messages),
	}
}

func (h *handler) newAssistantResp(o assistant.AssistantOutput) assistantResp {
	return assistantResp{
		transcriptResp: h.newTranscriptResp(o.TranscriptOutput),
		Greeting:       o.Greeting,
		Examples:       o.Examples,
		Available:      o.Available,
	}
}

func (h *handler) newWidgetResp(msgs []model.ChatMessage) widgetResp {
	return widgetResp{Messages: toMessages(msgs)}
}
