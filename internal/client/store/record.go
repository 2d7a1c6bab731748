package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/maintkeeper/internal/models"
)

// metadataField is the key of the metadata block attached to every record
const metadataField = "_metadata"

// valueField holds non-object values in the external representation
const valueField = "value"

// RecordMetadata is the _metadata block of a decoded record
type RecordMetadata struct {
	CreatedAt      time.Time       `json:"createdAt"`
	LastModified   time.Time       `json:"lastModified"`
	ExpiresAt      *time.Time      `json:"expiresAt,omitempty"`
	ID             string          `json:"id"`
	Collection     string          `json:"collection"`
	Checksum       string          `json:"checksum"`
	Source         string          `json:"source"`
	Priority       models.Priority `json:"priority"`
	LastError      string          `json:"lastError,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Version        int64           `json:"version"`
	Size           int             `json:"size"`
	CompressedSize int             `json:"compressedSize"`
	SyncAttempts   int             `json:"syncAttempts"`
	Synced         bool            `json:"synced"`
	Compressed     bool            `json:"compressed"`
	Wrapped        bool            `json:"wrapped,omitempty"` // Wrapped значение не объект и лежит в поле "value"
}

// Record is a decoded item as seen by collaborators: the logical value plus
// its metadata. It marshals as the value with a _metadata block merged in.
type Record struct {
	Value    any
	Metadata RecordMetadata
}

// Key returns the key of the record
func (r Record) Key() models.ItemKey {
	return models.ItemKey{Collection: r.Metadata.Collection, ID: r.Metadata.ID}
}

// Fields returns the value as an object, or nil if it isn't one
func (r Record) Fields() map[string]any {
	fields, _ := r.Value.(map[string]any)
	return fields
}

// MarshalJSON implements json.Marshaler
func (r Record) MarshalJSON() ([]byte, error) {
	meta := r.Metadata
	out := make(map[string]any)

	if fields, ok := r.Value.(map[string]any); ok {
		for k, v := range fields {
			out[k] = v
		}
		meta.Wrapped = false
	} else {
		out[valueField] = r.Value
		meta.Wrapped = true
	}
	out[metadataField] = meta

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. A missing _metadata block
// yields a zero Metadata and the whole object as Value.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("record must be a JSON object: %w", err)
	}

	r.Metadata = RecordMetadata{}
	if raw, ok := fields[metadataField]; ok {
		if err := json.Unmarshal(raw, &r.Metadata); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", metadataField, err)
		}
		delete(fields, metadataField)
	}

	if r.Metadata.Wrapped {
		var v any
		if raw, ok := fields[valueField]; ok {
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("failed to unmarshal value: %w", err)
			}
		}
		r.Value = v
		return nil
	}

	value := make(map[string]any, len(fields))
	for k, raw := range fields {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("failed to unmarshal field %q: %w", k, err)
		}
		value[k] = v
	}
	r.Value = value

	return nil
}

func newRecordMetadata(item *models.StoredItem) RecordMetadata {
	meta := RecordMetadata{
		ID:             item.ID,
		Collection:     item.Collection,
		CreatedAt:      item.CreatedAt,
		LastModified:   item.LastModified,
		Synced:         item.Synced,
		Version:        item.Version,
		Size:           item.RawSize,
		CompressedSize: item.CompressedSize,
		Compressed:     item.Compressed,
		Checksum:       item.Checksum,
		Source:         item.Metadata.Source,
		Priority:       item.Metadata.Priority,
		SyncAttempts:   item.SyncAttempts,
		LastError:      item.LastError,
	}
	if item.Metadata.Tags != nil {
		meta.Tags = append([]string(nil), item.Metadata.Tags...)
	}
	if item.Metadata.ExpiresAt != nil {
		expiresAt := *item.Metadata.ExpiresAt
		meta.ExpiresAt = &expiresAt
	}
	return meta
}
