package model

// Sender is the author of a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in a chat transcript.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}
