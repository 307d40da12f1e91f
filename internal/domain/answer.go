package domain

// Source tags where an answer came from.
type Source string

const (
	SourceOffline Source = "offline"
	SourceAI      Source = "ai"
)

// Answer is the result of dispatching a single question.
type Answer struct {
	Source Source
	Text   string
}

// NewOfflineAnswer creates an answer served from the knowledge base
func NewOfflineAnswer(text string) *Answer {
	return &Answer{Source: SourceOffline, Text: text}
}

// NewAIAnswer creates an answer produced by the completion service
func NewAIAnswer(text string) *Answer {
	return &Answer{Source: SourceAI, Text: text}
}
