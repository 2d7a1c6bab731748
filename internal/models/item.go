package models

import (
	"fmt"
	"time"
)

// Priority определяет приоритет синхронизации записи
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ItemKey адресует запись в двухуровневом пространстве ключей (collection, id).
// Имя коллекции может содержать любые символы, включая ':'.
type ItemKey struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// String returns "collection:id" for logs and exports
func (k ItemKey) String() string {
	return fmt.Sprintf("%s:%s", k.Collection, k.ID)
}

// ItemMetadata описывает свободные метаданные записи
type ItemMetadata struct {
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // ExpiresAt момент, после которого cleanup удаляет запись
	Source    string     `json:"source"`               // Source исходная коллекция
	Priority  Priority   `json:"priority"`             // Priority low|medium|high
	Tags      []string   `json:"tags,omitempty"`       // Tags произвольные теги
}

// Merge overlays the non-empty fields of other onto a copy of m
func (m ItemMetadata) Merge(other *ItemMetadata) ItemMetadata {
	if other == nil {
		return m
	}
	if other.Source != "" {
		m.Source = other.Source
	}
	if other.Priority != "" {
		m.Priority = other.Priority
	}
	if other.Tags != nil {
		m.Tags = append([]string(nil), other.Tags...)
	}
	if other.ExpiresAt != nil {
		expiresAt := *other.ExpiresAt
		m.ExpiresAt = &expiresAt
	}
	return m
}

// Expired reports whether the item expired at or before now
func (m ItemMetadata) Expired(now time.Time) bool {
	return m.ExpiresAt != nil && !m.ExpiresAt.After(now)
}

// StoredItem представляет одну доменную запись в локальном хранилище.
// Payload хранит канонический JSON (возможно сжатый zstd),
// Checksum всегда считается по несжатому каноническому JSON.
type StoredItem struct {
	CreatedAt      time.Time    `json:"created_at"`      // CreatedAt время первого сохранения
	LastModified   time.Time    `json:"last_modified"`   // LastModified время последнего изменения
	Collection     string       `json:"collection"`      // Collection логическая коллекция ("work-orders")
	ID             string       `json:"id"`              // ID идентификатор внутри коллекции
	Checksum       string       `json:"checksum"`        // Checksum FNV-1a 32 несжатого payload
	LastError      string       `json:"last_error"`      // LastError последняя ошибка синхронизации
	Metadata       ItemMetadata `json:"metadata"`        // Metadata source/priority/tags/expiresAt
	Payload        []byte       `json:"payload"`         // Payload закодированное значение
	Version        int64        `json:"version"`         // Version токен оптимистичной конкурентности
	RawSize        int          `json:"raw_size"`        // RawSize размер несжатого JSON
	CompressedSize int          `json:"compressed_size"` // CompressedSize размер payload
	SyncAttempts   int          `json:"sync_attempts"`   // SyncAttempts неудачные попытки синхронизации
	Compressed     bool         `json:"compressed"`      // Compressed payload сжат
	Synced         bool         `json:"synced"`          // Synced удаленная сторона подтвердила текущую версию
}

// Key returns the two-level key of the item
func (i *StoredItem) Key() ItemKey {
	return ItemKey{Collection: i.Collection, ID: i.ID}
}

// Clone создает глубокую копию записи
func (i *StoredItem) Clone() *StoredItem {
	c := *i
	c.Payload = append([]byte(nil), i.Payload...)
	c.Metadata.Tags = append([]string(nil), i.Metadata.Tags...)
	if i.Metadata.ExpiresAt != nil {
		expiresAt := *i.Metadata.ExpiresAt
		c.Metadata.ExpiresAt = &expiresAt
	}
	return &c
}
