package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	stdsync "sync"
	"time"

	httpClient "github.com/iudanet/maintkeeper/internal/client/api"
	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/pkg/api"
)

const (
	DefaultBatchSize  = 10
	DefaultMaxRetries = 3
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс движка синхронизации
type Service interface {
	// Sync отправляет несинхронизированные записи и удаления на endpoint
	Sync(ctx context.Context, endpoint string, opts Options) (*SyncResult, error)

	// ResolveConflict применяет явное решение к сохраненному конфликту
	ResolveConflict(ctx context.Context, key models.ItemKey, res Resolution) error

	// RegisterResolver регистрирует обработчик manual конфликтов для ключа
	RegisterResolver(key models.ItemKey, resolver ConflictResolver)

	// OnSync регистрирует наблюдателя, получающего каждый SyncResult
	OnSync(observer func(*SyncResult))
}

// Options configures one sync run
type Options struct {
	Collection         string // Collection ограничивает прогон одной коллекцией; пусто значит все
	ConflictResolution Policy
	BatchSize          int
	MaxRetries         int
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.ConflictResolution == "" {
		o.ConflictResolution = PolicyManual
	}
	return o
}

// ConflictRef describes a conflict met during a sync run
type ConflictRef struct {
	Key           models.ItemKey      `json:"key"`
	Type          models.ConflictType `json:"type"`
	Resolution    string              `json:"resolution,omitempty"` // Resolution пусто, если конфликт ожидает решения
	LocalVersion  int64               `json:"localVersion"`
	RemoteVersion int64               `json:"remoteVersion"`
	Resolved      bool                `json:"resolved"`
}

// SyncResult contains sync operation results
type SyncResult struct {
	StartedAt   time.Time     `json:"startedAt"`
	FinishedAt  time.Time     `json:"finishedAt"`
	Conflicts   []ConflictRef `json:"conflicts"`
	Errors      []string      `json:"errors"`
	Synced      int           `json:"synced"`  // количество подтвержденных записей
	Failed      int           `json:"failed"`  // ошибки и конфликты
	Skipped     int           `json:"skipped"` // превышен лимит попыток или ждут решения конфликта
	Deleted     int           `json:"deleted"` // подтвержденные удаления
	Success     bool          `json:"success"`
	Interrupted bool          `json:"interrupted"` // прогон остановлен отменой контекста
}

// syncTimeRecorder is implemented by stores that remember the last sync run
type syncTimeRecorder interface {
	RecordSyncTime(ctx context.Context, t time.Time) error
}

// engine pushes local changes to a remote endpoint
type engine struct {
	local     LocalStore
	newRemote RemoteFactory
	logger    *slog.Logger
	now       func() time.Time
	resolvers map[models.ItemKey]ConflictResolver
	observers []func(*SyncResult)
	mu        stdsync.RWMutex
}

// NewService creates a new sync service. A nil factory talks HTTP via api.Client.
func NewService(local LocalStore, newRemote RemoteFactory, logger *slog.Logger) Service {
	if newRemote == nil {
		newRemote = func(endpoint string) Remote {
			return httpClient.NewClient(endpoint)
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{
		local:     local,
		newRemote: newRemote,
		logger:    logger,
		now:       time.Now,
		resolvers: make(map[models.ItemKey]ConflictResolver),
	}
}

// RegisterResolver registers resolver for manual conflicts on key
func (e *engine) RegisterResolver(key models.ItemKey, resolver ConflictResolver) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if resolver == nil {
		delete(e.resolvers, key)
		return
	}
	e.resolvers[key] = resolver
}

// OnSync registers observer called with every SyncResult
func (e *engine) OnSync(observer func(*SyncResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.observers = append(e.observers, observer)
}

// Sync drains unsynced items in sequential batches and then pushes pending
// deletes. Individual failures are reported in the result; an error is
// returned only when unsynced items cannot be enumerated.
func (e *engine) Sync(ctx context.Context, endpoint string, opts Options) (*SyncResult, error) {
	opts = opts.withDefaults()
	if !opts.ConflictResolution.Valid() {
		return nil, fmt.Errorf("unknown conflict resolution policy %q", opts.ConflictResolution)
	}

	result := &SyncResult{
		Success:   true,
		StartedAt: e.now(),
		Conflicts: []ConflictRef{},
		Errors:    []string{},
	}

	e.logger.Info("Starting synchronization",
		"endpoint", endpoint,
		"collection", opts.Collection,
		"policy", opts.ConflictResolution)

	items, err := e.local.GetUnsynced(ctx, opts.Collection)
	if err != nil {
		result.Success = false
		result.Errors = append(result.Errors, err.Error())
		result.FinishedAt = e.now()
		e.notify(result)
		return result, fmt.Errorf("failed to get unsynced items: %w", err)
	}

	pending := e.pendingConflicts(ctx)
	remote := e.newRemote(endpoint)

	e.logger.Info("Collected local changes", "count", len(items))

	for start := 0; start < len(items) && !result.Interrupted; start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(items))

		for _, item := range items[start:end] {
			if ctx.Err() != nil {
				result.Interrupted = true
				break
			}
			if _, waiting := pending[item.Key()]; waiting {
				result.Skipped++
				continue
			}
			e.pushItem(ctx, remote, item, opts, result)
		}
	}

	if !result.Interrupted {
		e.pushDeletes(ctx, remote, opts, pending, result)
	}

	result.FinishedAt = e.now()

	if recorder, ok := e.local.(syncTimeRecorder); ok && !result.Interrupted {
		if err := recorder.RecordSyncTime(ctx, result.FinishedAt); err != nil {
			e.logger.Warn("Failed to save last sync time", "error", err)
		}
	}

	e.logger.Info("Synchronization completed",
		"synced", result.Synced,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"deleted", result.Deleted,
		"conflicts", len(result.Conflicts),
		"interrupted", result.Interrupted)

	e.notify(result)

	return result, nil
}

// pushItem sends one item and records the outcome
func (e *engine) pushItem(ctx context.Context, remote Remote, item *models.StoredItem, opts Options, result *SyncResult) {
	key := item.Key()

	if item.SyncAttempts >= opts.MaxRetries {
		result.Skipped++
		return
	}

	value, err := e.local.Value(item)
	if err != nil {
		e.recordFailure(ctx, key, fmt.Errorf("failed to decode item: %w", err), result)
		return
	}

	resp, err := remote.PutItem(ctx, item.Collection, item.ID, item.Version, value)

	var conflictErr *httpClient.ConflictError
	switch {
	case err == nil:
		var remoteVersion *int64
		if resp != nil {
			remoteVersion = &resp.Version
		}
		// Правка во время PUT оставляет запись несинхронизированной
		if _, err := e.local.MarkPushed(ctx, key, item.Version, item.Checksum, remoteVersion); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", key, err))
			return
		}
		result.Synced++

	case errors.As(err, &conflictErr):
		result.Failed++
		conflictType := models.ConflictTypeUpdate
		if item.Version <= 1 {
			conflictType = models.ConflictTypeCreate
		}
		conflict := newConflict(key, conflictType, value, item.Version, item.LastModified, conflictErr.Remote)
		e.handleConflict(ctx, conflict, item, opts, result)

	case ctx.Err() != nil:
		// Отмена не считается неудачной попыткой
		result.Interrupted = true

	default:
		e.recordFailure(ctx, key, err, result)
	}
}

// pushDeletes sends pending tombstones
func (e *engine) pushDeletes(ctx context.Context, remote Remote, opts Options, pending map[models.ItemKey]struct{}, result *SyncResult) {
	tombstones, err := e.local.Tombstones(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to list tombstones: %v", err))
		return
	}

	for _, tombstone := range tombstones {
		if opts.Collection != "" && tombstone.Collection != opts.Collection {
			continue
		}
		if ctx.Err() != nil {
			result.Interrupted = true
			return
		}

		key := tombstone.Key()
		if _, waiting := pending[key]; waiting || tombstone.Attempts >= opts.MaxRetries {
			result.Skipped++
			continue
		}

		err := remote.DeleteItem(ctx, tombstone.Collection, tombstone.ID, tombstone.Version)

		var conflictErr *httpClient.ConflictError
		switch {
		case err == nil, errors.Is(err, httpClient.ErrNotFound):
			if err := e.local.AcknowledgeDelete(ctx, key); err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", key, err))
				continue
			}
			result.Deleted++

		case errors.As(err, &conflictErr):
			result.Failed++
			conflict := newConflict(key, models.ConflictTypeDelete, nil, tombstone.Version, tombstone.DeletedAt, conflictErr.Remote)
			e.handleConflict(ctx, conflict, nil, opts, result)

		case ctx.Err() != nil:
			result.Interrupted = true
			return

		default:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", key, err))
			if err := e.local.RecordDeleteFailure(ctx, key, err.Error()); err != nil {
				e.logger.Warn("Failed to record delete failure", "key", key.String(), "error", err)
			}
		}
	}
}

func (e *engine) recordFailure(ctx context.Context, key models.ItemKey, cause error, result *SyncResult) {
	result.Failed++
	result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", key, cause))

	e.logger.Warn("Failed to sync item",
		"collection", key.Collection,
		"id", key.ID,
		"error", cause)

	if err := e.local.RecordSyncFailure(ctx, key, cause.Error()); err != nil {
		e.logger.Warn("Failed to record sync failure", "key", key.String(), "error", err)
	}
}

// handleConflict dispatches a conflict to the configured policy.
// item is the pushed local item, nil for delete conflicts.
func (e *engine) handleConflict(ctx context.Context, conflict *models.Conflict, item *models.StoredItem, opts Options, result *SyncResult) {
	key := conflict.Key()
	ref := ConflictRef{
		Key:           key,
		Type:          conflict.ConflictType,
		LocalVersion:  conflict.LocalVersion,
		RemoteVersion: conflict.RemoteVersion,
	}

	var err error
	switch opts.ConflictResolution {
	case PolicyLocal:
		err = e.keepLocal(ctx, conflict, item)
		ref.Resolution = PolicyLocal.String()
	case PolicyRemote:
		err = e.keepRemote(ctx, conflict, item)
		ref.Resolution = PolicyRemote.String()
	default:
		ref.Resolution, err = e.manual(ctx, conflict)
	}

	if err != nil {
		ref.Resolution = ""
		result.Errors = append(result.Errors, fmt.Sprintf("%s: conflict resolution failed: %v", key, err))
		e.logger.Warn("Conflict resolution failed", "key", key.String(), "error", err)
	}
	ref.Resolved = ref.Resolution != ""

	result.Conflicts = append(result.Conflicts, ref)
}

// keepLocal accepts the local state without pushing it again
func (e *engine) keepLocal(ctx context.Context, conflict *models.Conflict, item *models.StoredItem) error {
	if conflict.ConflictType == models.ConflictTypeDelete || item == nil {
		return e.local.AcknowledgeDelete(ctx, conflict.Key())
	}

	var remoteVersion *int64
	if conflict.RemoteVersion > 0 {
		remoteVersion = &conflict.RemoteVersion
	}
	_, err := e.local.MarkPushed(ctx, conflict.Key(), item.Version, item.Checksum, remoteVersion)
	return err
}

// keepRemote overwrites the local item with remote data via Save
func (e *engine) keepRemote(ctx context.Context, conflict *models.Conflict, item *models.StoredItem) error {
	key := conflict.Key()

	var meta *models.ItemMetadata
	if item != nil {
		meta = &item.Metadata
	}

	value, err := decodeRaw(conflict.RemoteData)
	if err != nil {
		return fmt.Errorf("failed to decode remote data: %w", err)
	}

	if err := e.local.Save(ctx, key.Collection, key.ID, value, meta); err != nil {
		return err
	}

	var remoteVersion *int64
	if conflict.RemoteVersion > 0 {
		remoteVersion = &conflict.RemoteVersion
	}
	// Save пишет версию 1; более поздняя правка не отмечается синхронизированной
	_, err = e.local.MarkPushed(ctx, key, 1, "", remoteVersion)
	return err
}

// manual persists the conflict and runs the resolver registered for its key
func (e *engine) manual(ctx context.Context, conflict *models.Conflict) (string, error) {
	if err := e.local.RecordConflict(ctx, conflict); err != nil {
		return "", err
	}

	e.mu.RLock()
	resolver := e.resolvers[conflict.Key()]
	e.mu.RUnlock()

	if resolver == nil {
		return "", nil
	}

	res, err := resolver(ctx, conflict)
	if err != nil {
		return "", fmt.Errorf("resolver failed: %w", err)
	}
	if res == nil {
		return "", nil
	}

	if err := e.applyResolution(ctx, conflict, *res); err != nil {
		return "", err
	}

	return res.Kind.String(), nil
}

func (e *engine) pendingConflicts(ctx context.Context) map[models.ItemKey]struct{} {
	pending := make(map[models.ItemKey]struct{})

	conflicts, err := e.local.Conflicts(ctx)
	if err != nil {
		e.logger.Warn("Failed to list pending conflicts", "error", err)
		return pending
	}

	for _, conflict := range conflicts {
		pending[conflict.Key()] = struct{}{}
	}
	return pending
}

func (e *engine) notify(result *SyncResult) {
	e.mu.RLock()
	observers := slices.Clone(e.observers)
	e.mu.RUnlock()

	for _, observer := range observers {
		observer(result)
	}
}

func newConflict(key models.ItemKey, conflictType models.ConflictType, localValue any, localVersion int64, localTime time.Time, remote api.ConflictResponse) *models.Conflict {
	conflict := &models.Conflict{
		Collection:      key.Collection,
		ID:              key.ID,
		ConflictType:    conflictType,
		LocalVersion:    localVersion,
		RemoteVersion:   remote.Version,
		LocalTimestamp:  localTime,
		RemoteTimestamp: remote.UpdatedAt,
		RemoteData:      remote.Data,
	}

	if localValue != nil {
		if data, err := json.Marshal(localValue); err == nil {
			conflict.LocalData = data
		}
	}

	return conflict
}
