package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/internal/server/storage"
)

// PutItem stores item when it advances the stored version.
// Returns the record held after the call and whether item was saved.
func (s *Storage) PutItem(ctx context.Context, item *models.RemoteItem) (*models.RemoteItem, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := getItem(ctx, tx, item.Collection, item.ID)
	if err != nil && !errors.Is(err, storage.ErrItemNotFound) {
		return nil, false, fmt.Errorf("failed to check existing item: %w", err)
	}

	// Версия должна строго расти
	if existing != nil && item.Version <= existing.Version {
		return existing, false, nil
	}

	query := `
		INSERT INTO items (collection, id, data, version, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			data = excluded.data,
			version = excluded.version,
			updated_at = excluded.updated_at
	`

	_, err = tx.ExecContext(ctx, query,
		item.Collection,
		item.ID,
		[]byte(item.Data),
		item.Version,
		item.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return item, true, nil
}

// GetItem retrieves a single record
func (s *Storage) GetItem(ctx context.Context, collection, id string) (*models.RemoteItem, error) {
	return getItem(ctx, s.db, collection, id)
}

// ListItems returns all records of collection ordered by id
func (s *Storage) ListItems(ctx context.Context, collection string) ([]*models.RemoteItem, error) {
	query := `
		SELECT collection, id, data, version, updated_at
		FROM items
		WHERE collection = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	items := make([]*models.RemoteItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// DeleteItem removes the record if version is not behind the stored one
func (s *Storage) DeleteItem(ctx context.Context, collection, id string, version int64) (*models.RemoteItem, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := getItem(ctx, tx, collection, id)
	if err != nil {
		return nil, false, err
	}

	if version < existing.Version {
		return existing, false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return nil, false, fmt.Errorf("failed to delete item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return existing, true, nil
}

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func getItem(ctx context.Context, q querier, collection, id string) (*models.RemoteItem, error) {
	query := `
		SELECT collection, id, data, version, updated_at
		FROM items
		WHERE collection = ? AND id = ?
	`

	item, err := scanItem(q.QueryRowContext(ctx, query, collection, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func scanItem(row scanner) (*models.RemoteItem, error) {
	var (
		item      models.RemoteItem
		data      []byte
		updatedAt int64
	)

	if err := row.Scan(&item.Collection, &item.ID, &data, &item.Version, &updatedAt); err != nil {
		return nil, err
	}

	item.Data = data
	item.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &item, nil
}
