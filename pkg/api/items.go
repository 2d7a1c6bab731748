package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IfMatchHeader carries the item version as an optimistic-concurrency precondition
const IfMatchHeader = "If-Match"

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// PutResponse тело успешного ответа на PUT/DELETE
type PutResponse struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"` // версия, принятая сервером
}

// ConflictResponse тело ответа 409: авторитетная запись сервера
type ConflictResponse struct {
	UpdatedAt time.Time       `json:"updatedAt"`
	Data      json.RawMessage `json:"data"`
	Version   int64           `json:"version"`
}

// ItemResponse запись, хранимая на сервере
type ItemResponse struct {
	UpdatedAt  time.Time       `json:"updatedAt"`
	Collection string          `json:"collection"`
	ID         string          `json:"id"`
	Data       json.RawMessage `json:"data"`
	Version    int64           `json:"version"`
}

// ItemListResponse список записей коллекции
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// FormatVersion renders version as a quoted entity tag: `"3"`
func FormatVersion(version int64) string {
	return strconv.Quote(strconv.FormatInt(version, 10))
}

// ParseVersion parses an If-Match value produced by FormatVersion.
// Unquoted values and weak tags (W/"3") are accepted.
func ParseVersion(header string) (int64, error) {
	value := strings.TrimSpace(header)
	value = strings.TrimPrefix(value, "W/")
	value = strings.Trim(value, `"`)

	version, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", header, err)
	}
	if version < 0 {
		return 0, fmt.Errorf("invalid version %q: negative", header)
	}

	return version, nil
}
