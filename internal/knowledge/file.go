package knowledge

import (
	"errors"
	"fmt"
	"os"

	"github.com/cloo-solutions/krishisahay/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrEmptyTable is returned when a knowledge file holds no records
var ErrEmptyTable = errors.New("knowledge file has no records")

type fileTable struct {
	Records []domain.KnowledgeRecord `yaml:"records"`
}

// LoadFile reads a YAML knowledge table:
//
//	records:
//	  - keywords: [wheat, rust]
//	    answer: Wheat rust is a fungal disease.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML knowledge table and validates every record.
func Parse(data []byte) (*Base, error) {
	var table fileTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}

	if len(table.Records) == 0 {
		return nil, ErrEmptyTable
	}

	for i, r := range table.Records {
		if err := domain.ValidateKnowledgeRecord(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return NewBase(table.Records), nil
}

// Load returns the table at path, or the built-in table when path is empty.
func Load(path string) (*Base, error) {
	if path == "" {
		return NewDefaultBase(), nil
	}
	return LoadFile(path)
}
