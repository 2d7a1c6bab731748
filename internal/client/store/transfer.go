package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/maintkeeper/internal/models"
)

// ExportDocument is the JSON document produced by Export
type ExportDocument struct {
	ExportedAt time.Time `json:"exportedAt"`
	Collection string    `json:"collection,omitempty"`
	Items      []Record  `json:"items"`
}

// Export dumps decoded records of collection (all collections if empty)
func (s *Store) Export(ctx context.Context, collection string) ([]byte, error) {
	records, err := s.Get(ctx, collection, "")
	if err != nil {
		return nil, err
	}

	doc := ExportDocument{
		ExportedAt: s.clock.Now(),
		Collection: collection,
		Items:      records,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	return data, nil
}

// Import re-saves every record of data into collection. data is either an
// export document or a bare array of records. Records without an id get a
// new UUID; an empty collection falls back to each record's own collection.
// On failure the returned error is an *ImportError.
func (s *Store) Import(ctx context.Context, data []byte, collection string) (int, error) {
	records, err := parseImport(data)
	if err != nil {
		return 0, &ImportError{Cause: err}
	}

	imported := 0
	for i, record := range records {
		target := collection
		if target == "" {
			target = record.Metadata.Collection
		}
		if target == "" {
			return imported, &ImportError{
				Imported: imported,
				Cause:    fmt.Errorf("record %d: %w: no collection", i, ErrInvalidImport),
			}
		}

		id := record.Metadata.ID
		if id == "" {
			id = uuid.New().String()
		}

		meta := &models.ItemMetadata{
			Source:    record.Metadata.Source,
			Priority:  record.Metadata.Priority,
			Tags:      record.Metadata.Tags,
			ExpiresAt: record.Metadata.ExpiresAt,
		}

		if err := s.Save(ctx, target, id, record.Value, meta); err != nil {
			return imported, &ImportError{Imported: imported, Cause: err}
		}
		imported++
	}

	s.logger.Info("Import completed", "collection", collection, "imported", imported)

	return imported, nil
}

func parseImport(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrInvalidImport
	}

	var records []Record

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to parse records: %w", err)
		}
	case '{':
		var doc struct {
			Items []Record `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse export document: %w", err)
		}
		if doc.Items == nil {
			return nil, fmt.Errorf("%w: missing items", ErrInvalidImport)
		}
		records = doc.Items
	default:
		return nil, ErrInvalidImport
	}

	return records, nil
}
