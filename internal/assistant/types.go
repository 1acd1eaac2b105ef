package assistant

import (
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
)

const (
	AssistantGreeting = "Hello! I'm your PartnerDashboard AI Assistant. I can help analyze your data and answer questions about your partner performance. What would you like to know?"
	AssistantCleared  = "Conversation cleared. How else can I help you with your data analysis?"
	AssistantFallback = "I couldn't process your request. Please try again."
	AssistantError    = "Sorry, I encountered an error while processing your request. Please try again."

	WidgetGreeting = "Hello! How can I help you analyze your PartnerDashboard data today?"
	WidgetFallback = "Sorry, I couldn't get a response."
	WidgetNoFile   = "No file processed yet. Please upload a file first."

	// WidgetErrorPrefix precedes the failure text in widget error messages.
	WidgetErrorPrefix = "Error: "
)

// ExampleQuestions are offered on the assistant page.
var ExampleQuestions = []string{
	"Which country had the highest revenue in April 2025?",
	"Compare Vietnam and Kenya based on monthly Deriv Revenue for the past 4 months",
	"Which partners have shown strong growth in the last 3 months?",
	"Identify partners at risk of churn based on declining revenue trends",
}

type GetInput struct {
	Source model.DataSource
}

type SendInput struct {
	Source model.DataSource
	Query  string
}

type TranscriptOutput struct {
	Resolution datasource.Resolution
	Messages   []model.ChatMessage
}

type AssistantOutput struct {
	TranscriptOutput
	Greeting  string
	Examples  []string
	Available []model.DataSource
}
