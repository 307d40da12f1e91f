// Package knowledge holds the offline keyword-indexed answer table.
package knowledge

import (
	"strings"

	"github.com/cloo-solutions/krishisahay/internal/domain"
)

// Base is an ordered, read-only set of knowledge records. It is safe for
// concurrent use once constructed.
type Base struct {
	records []domain.KnowledgeRecord
}

// NewBase copies records into a new Base. Keywords are lowercased and empty
// keywords dropped; record order and keyword order are preserved.
func NewBase(records []domain.KnowledgeRecord) *Base {
	copied := make([]domain.KnowledgeRecord, 0, len(records))
	for _, r := range records {
		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			kws = append(kws, kw)
		}
		copied = append(copied, domain.KnowledgeRecord{Keywords: kws, Answer: r.Answer})
	}
	return &Base{records: copied}
}

// NewDefaultBase returns a Base over the built-in records.
func NewDefaultBase() *Base {
	return NewBase(DefaultRecords())
}

// Search returns the answer of the first record with a keyword contained in
// the lowercased query. Records are scanned in definition order and, within a
// record, keywords in definition order. Matching is by substring, not whole
// word.
func (b *Base) Search(query string) (string, bool) {
	if query == "" {
		return "", false
	}

	q := strings.ToLower(query)
	for _, r := range b.records {
		for _, kw := range r.Keywords {
			if strings.Contains(q, kw) {
				return r.Answer, true
			}
		}
	}
	return "", false
}

// Records returns a copy of the table in definition order.
func (b *Base) Records() []domain.KnowledgeRecord {
	out := make([]domain.KnowledgeRecord, len(b.records))
	for i, r := range b.records {
		out[i] = domain.KnowledgeRecord{
			Keywords: append([]string(nil), r.Keywords...),
			Answer:   r.Answer,
		}
	}
	return out
}

// Len returns the number of records.
func (b *Base) Len() int {
	return len(b.records)
}
