package models

import (
	"encoding/json"
	"time"
)

// Operation тип мутации в журнале намерений синхронизации
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// SyncIntent одна запись append-only журнала мутаций.
// Каждая мутация порождает отдельную запись, даже если ключ меняется повторно.
type SyncIntent struct {
	Timestamp  time.Time       `json:"timestamp"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Operation  Operation       `json:"operation"`
	Data       json.RawMessage `json:"data,omitempty"` // Data канонический JSON значения (пусто для delete)
	Seq        uint64          `json:"seq"`            // Seq присваивается хранилищем, строго возрастает
}

// Key returns the key the intent refers to
func (s *SyncIntent) Key() ItemKey {
	return ItemKey{Collection: s.Collection, ID: s.ID}
}

// Tombstone отмечает локальное удаление, еще не подтвержденное сервером
type Tombstone struct {
	DeletedAt  time.Time `json:"deleted_at"`
	Collection string    `json:"collection"`
	ID         string    `json:"id"`
	LastError  string    `json:"last_error"`
	Version    int64     `json:"version"`
	Attempts   int       `json:"attempts"`
}

// Key returns the key of the deleted item
func (t *Tombstone) Key() ItemKey {
	return ItemKey{Collection: t.Collection, ID: t.ID}
}

// ConflictType тип операции, на которой обнаружен конфликт
type ConflictType string

const (
	ConflictTypeCreate ConflictType = "create"
	ConflictTypeUpdate ConflictType = "update"
	ConflictTypeDelete ConflictType = "delete"
)

// Conflict расхождение локальной и удаленной версий одной записи.
// Хранится до явного разрешения.
type Conflict struct {
	LocalTimestamp  time.Time       `json:"local_timestamp"`
	RemoteTimestamp time.Time       `json:"remote_timestamp"`
	DetectedAt      time.Time       `json:"detected_at"`
	Collection      string          `json:"collection"`
	ID              string          `json:"id"`
	ConflictType    ConflictType    `json:"conflict_type"`
	LocalData       json.RawMessage `json:"local_data,omitempty"`
	RemoteData      json.RawMessage `json:"remote_data,omitempty"`
	LocalVersion    int64           `json:"local_version"`
	RemoteVersion   int64           `json:"remote_version"`
}

// Key returns the key of the conflicting item
func (c *Conflict) Key() ItemKey {
	return ItemKey{Collection: c.Collection, ID: c.ID}
}
