package models

import (
	"encoding/json"
	"time"
)

// RemoteItem запись, хранимая на сервере синхронизации.
// Version задает клиент; сервер принимает только продвигающие версии.
type RemoteItem struct {
	UpdatedAt  time.Time       `json:"updated_at"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Data       json.RawMessage `json:"data"`
	Version    int64           `json:"version"`
}

// Key returns the two-level key of the record
func (r *RemoteItem) Key() ItemKey {
	return ItemKey{Collection: r.Collection, ID: r.ID}
}
