package models

import "time"

// CheckType вид проверки целостности
type CheckType string

const (
	CheckTypeChecksum   CheckType = "checksum"
	CheckTypeSchema     CheckType = "schema"
	CheckTypeReference  CheckType = "reference"
	CheckTypeConstraint CheckType = "constraint"
)

// CheckStatus результат отдельной проверки
type CheckStatus string

const (
	CheckPassed  CheckStatus = "passed"
	CheckFailed  CheckStatus = "failed"
	CheckWarning CheckStatus = "warning"
)

// IntegrityCheck результат одной проверки. Эфемерный: накапливается в истории
// валидатора и никогда не является авторитетным состоянием.
type IntegrityCheck struct {
	Timestamp  time.Time   `json:"timestamp"`
	Data       any         `json:"data,omitempty"`
	ID         string      `json:"id"`
	Collection string      `json:"collection"`
	ItemID     string      `json:"item_id"`
	Field      string      `json:"field,omitempty"`
	Type       CheckType   `json:"type"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
}
