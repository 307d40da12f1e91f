package knowledge

import "github.com/cloo-solutions/krishisahay/internal/domain"

// DefaultRecords returns the built-in table. Order matters: a query that
// matches several records gets the first one listed here.
func DefaultRecords() []domain.KnowledgeRecord {
	return []domain.KnowledgeRecord{
		domain.NewKnowledgeRecord(
			"Wheat rust is a fungal disease. Use resistant varieties and spray Propiconazole 25% EC.",
			"wheat", "rust",
		),
		domain.NewKnowledgeRecord(
			"For rice crops, apply NPK fertilizer in split doses during tillering and panicle initiation.",
			"rice", "paddy",
		),
		domain.NewKnowledgeRecord(
			"PM-KISAN provides ₹6000 per year to eligible farmers in three installments.",
			"pm kisan", "scheme",
		),
		domain.NewKnowledgeRecord(
			"Use Neem oil spray or Imidacloprid for cotton pest control.",
			"cotton", "pest",
		),
		domain.NewKnowledgeRecord(
			"Apply 120:60:40 NPK per hectare for maize in split application.",
			"maize", "fertilizer",
		),
	}
}
