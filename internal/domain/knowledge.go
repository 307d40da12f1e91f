package domain

import (
	"fmt"
	"strings"
)

// KnowledgeRecord maps a set of lowercase keywords to a canned answer.
// Keyword order is significant: the first keyword found in a query wins.
type KnowledgeRecord struct {
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
}

// NewKnowledgeRecord creates a KnowledgeRecord, lowercasing its keywords
func NewKnowledgeRecord(answer string, keywords ...string) KnowledgeRecord {
	kws := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kws = append(kws, strings.ToLower(kw))
	}
	return KnowledgeRecord{
		Keywords: kws,
		Answer:   answer,
	}
}

// ValidateKnowledgeRecord validates a KnowledgeRecord
func ValidateKnowledgeRecord(r KnowledgeRecord) error {
	if strings.TrimSpace(r.Answer) == "" {
		return fmt.Errorf("knowledge record Answer is required")
	}

	for _, kw := range r.Keywords {
		if kw != "" {
			return nil
		}
	}

	return fmt.Errorf("knowledge record needs at least one non-empty keyword")
}
