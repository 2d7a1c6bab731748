package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/maintkeeper/internal/models"
)

// Policy определяет автоматическую стратегию разрешения конфликтов
type Policy string

const (
	PolicyManual Policy = "manual" // конфликт сохраняется до явного разрешения
	PolicyLocal  Policy = "local"  // локальная версия побеждает без повторной отправки
	PolicyRemote Policy = "remote" // удаленная версия перезаписывает локальную
)

// Valid reports whether p is a known policy
func (p Policy) Valid() bool {
	switch p {
	case PolicyManual, PolicyLocal, PolicyRemote:
		return true
	}
	return false
}

// ResolutionKind selects which side a resolution keeps
type ResolutionKind int

const (
	KeepLocal ResolutionKind = iota + 1
	KeepRemote
	KeepMerged
)

func (k ResolutionKind) String() string {
	switch k {
	case KeepLocal:
		return "local"
	case KeepRemote:
		return "remote"
	case KeepMerged:
		return "merged"
	}
	return fmt.Sprintf("resolution(%d)", int(k))
}

// Resolution is a caller-approved outcome of a conflict
type Resolution struct {
	Value any // Value итоговое значение для KeepMerged
	Kind  ResolutionKind
}

// UseLocal keeps the local value and pushes it on the next sync
func UseLocal() Resolution {
	return Resolution{Kind: KeepLocal}
}

// UseRemote adopts the remote value as synced
func UseRemote() Resolution {
	return Resolution{Kind: KeepRemote}
}

// UseMerged writes value and pushes it on the next sync
func UseMerged(value any) Resolution {
	return Resolution{Kind: KeepMerged, Value: value}
}

// ConflictResolver decides a manual conflict. Returning nil leaves the
// conflict pending.
type ConflictResolver func(ctx context.Context, conflict *models.Conflict) (*Resolution, error)

// ResolveConflict applies res to the pending conflict for key.
// Local and merged values get the version after the remote one and stay
// unsynced so the next sync delivers them; a remote value is stored synced.
func (e *engine) ResolveConflict(ctx context.Context, key models.ItemKey, res Resolution) error {
	conflict, err := e.local.Conflict(ctx, key)
	if err != nil {
		return err
	}

	return e.applyResolution(ctx, conflict, res)
}

func (e *engine) applyResolution(ctx context.Context, conflict *models.Conflict, res Resolution) error {
	key := conflict.Key()
	next := conflict.RemoteVersion + 1

	switch res.Kind {
	case KeepRemote:
		value, err := decodeRaw(conflict.RemoteData)
		if err != nil {
			return fmt.Errorf("failed to decode remote data: %w", err)
		}
		return e.local.ResolveWithValue(ctx, key, value, conflict.RemoteVersion, true)

	case KeepLocal:
		if conflict.ConflictType == models.ConflictTypeDelete {
			return e.local.ResolveAsDeleted(ctx, key, conflict.RemoteVersion, true)
		}
		value, err := decodeRaw(conflict.LocalData)
		if err != nil {
			return fmt.Errorf("failed to decode local data: %w", err)
		}
		return e.local.ResolveWithValue(ctx, key, value, next, false)

	case KeepMerged:
		return e.local.ResolveWithValue(ctx, key, res.Value, next, false)
	}

	return fmt.Errorf("unknown resolution %v", res.Kind)
}

func decodeRaw(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (p Policy) String() string {
	return string(p)
}
