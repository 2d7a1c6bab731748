package integrity

import (
	"context"
	"errors"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/models"
)

// failingLookup отдает ошибку при чтении одной коллекции
type failingLookup struct {
	storage.ItemStorage
	failCollection string
}

func (f *failingLookup) ListItems(ctx context.Context, collection string) ([]*models.StoredItem, error) {
	if collection == f.failCollection {
		return nil, errors.New("lookup unavailable")
	}
	return f.ItemStorage.ListItems(ctx, collection)
}
