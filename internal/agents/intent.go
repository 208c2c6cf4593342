package agents

import "strings"

// Classifier decides whether a user message asks for a ticket to be created.
// The default is a keyword scan; swapping in a model-backed classifier only
// requires a new implementation.
type Classifier interface {
	WantsTicket(message string) bool
}

type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (c *KeywordClassifier) WantsTicket(message string) bool {
	msg := strings.ToLower(message)
	return strings.Contains(msg, "new task") || strings.Contains(msg, "create ticket")
}
