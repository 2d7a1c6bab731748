package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/maintkeeper/internal/cache"
	"github.com/iudanet/maintkeeper/internal/models"
	"github.com/iudanet/maintkeeper/internal/server/storage"
	"github.com/iudanet/maintkeeper/pkg/api"
)

// maxBodySize ограничение размера тела PUT
const maxBodySize = 1 << 20

//go:generate moq -out items_storage_mock.go . ItemStorage

// ItemStorage определяет интерфейс хранилища записей
type ItemStorage interface {
	PutItem(ctx context.Context, item *models.RemoteItem) (*models.RemoteItem, bool, error)
	GetItem(ctx context.Context, collection, id string) (*models.RemoteItem, error)
	ListItems(ctx context.Context, collection string) ([]*models.RemoteItem, error)
	DeleteItem(ctx context.Context, collection, id string, version int64) (*models.RemoteItem, bool, error)
}

// ItemsHandler serves the optimistic-concurrency item endpoint
type ItemsHandler struct {
	logger  *slog.Logger
	storage ItemStorage
	cache   *cache.Cache[*models.RemoteItem]
	now     func() time.Time
}

// NewItemsHandler creates a new items handler.
// A nil cache disables read caching.
func NewItemsHandler(logger *slog.Logger, storage ItemStorage, readCache *cache.Cache[*models.RemoteItem]) *ItemsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemsHandler{
		logger:  logger,
		storage: storage,
		cache:   readCache,
		now:     time.Now,
	}
}

// Register mounts the item routes on mux
func (h *ItemsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("PUT /api/v1/items/{collection}/{id}", h.PutItem)
	mux.HandleFunc("GET /api/v1/items/{collection}/{id}", h.GetItem)
	mux.HandleFunc("DELETE /api/v1/items/{collection}/{id}", h.DeleteItem)
	mux.HandleFunc("GET /api/v1/items/{collection}", h.ListItems)
}

// PutItem обрабатывает PUT /api/v1/items/{collection}/{id}.
// Принимает запись, если ее нет или версия из If-Match больше сохраненной,
// иначе отвечает 409 с сохраненной записью.
func (h *ItemsHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	collection, id := r.PathValue("collection"), r.PathValue("id")

	version, ok := h.requireVersion(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		h.logger.Warn("Failed to read request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if !json.Valid(body) {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body", "body must be a JSON value")
		return
	}

	item := &models.RemoteItem{
		Collection: collection,
		ID:         id,
		Data:       body,
		Version:    version,
		UpdatedAt:  h.now().UTC(),
	}

	current, saved, err := h.storage.PutItem(r.Context(), item)
	if err != nil {
		h.logger.Error("Failed to save item", "error", err, "collection", collection, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", "")
		return
	}

	if !saved {
		h.logger.Info("Version conflict",
			"collection", collection,
			"id", id,
			"pushed_version", version,
			"stored_version", current.Version)
		writeJSON(w, h.logger, http.StatusConflict, api.ConflictResponse{
			Data:      current.Data,
			Version:   current.Version,
			UpdatedAt: current.UpdatedAt,
		})
		return
	}

	h.invalidate(collection, id)
	h.logger.Debug("Item saved", "collection", collection, "id", id, "version", version)

	writeJSON(w, h.logger, http.StatusOK, api.PutResponse{
		Version:   current.Version,
		UpdatedAt: current.UpdatedAt,
	})
}

// GetItem обрабатывает GET /api/v1/items/{collection}/{id}
func (h *ItemsHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	collection, id := r.PathValue("collection"), r.PathValue("id")

	load := func() (*models.RemoteItem, error) {
		return h.storage.GetItem(r.Context(), collection, id)
	}

	var (
		item *models.RemoteItem
		err  error
	)
	if h.cache != nil {
		item, err = h.cache.GetOrCompute(cacheKey(collection, id), 0, load)
	} else {
		item, err = load()
	}

	if errors.Is(err, storage.ErrItemNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "item not found", "")
		return
	}
	if err != nil {
		h.logger.Error("Failed to get item", "error", err, "collection", collection, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", "")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, toItemResponse(item))
}

// ListItems обрабатывает GET /api/v1/items/{collection}
func (h *ItemsHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("collection")

	items, err := h.storage.ListItems(r.Context(), collection)
	if err != nil {
		h.logger.Error("Failed to list items", "error", err, "collection", collection)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", "")
		return
	}

	resp := api.ItemListResponse{Items: make([]api.ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// DeleteItem обрабатывает DELETE /api/v1/items/{collection}/{id}.
// Удаляет запись, если версия из If-Match не отстает от сохраненной.
func (h *ItemsHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	collection, id := r.PathValue("collection"), r.PathValue("id")

	version, ok := h.requireVersion(w, r)
	if !ok {
		return
	}

	current, deleted, err := h.storage.DeleteItem(r.Context(), collection, id, version)
	if errors.Is(err, storage.ErrItemNotFound) {
		writeError(w, h.logger, http.StatusNotFound, "item not found", "")
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete item", "error", err, "collection", collection, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", "")
		return
	}

	if !deleted {
		h.logger.Info("Delete conflict",
			"collection", collection,
			"id", id,
			"pushed_version", version,
			"stored_version", current.Version)
		writeJSON(w, h.logger, http.StatusConflict, api.ConflictResponse{
			Data:      current.Data,
			Version:   current.Version,
			UpdatedAt: current.UpdatedAt,
		})
		return
	}

	h.invalidate(collection, id)
	w.WriteHeader(http.StatusNoContent)
}

// requireVersion читает If-Match; при ошибке уже записывает ответ
func (h *ItemsHandler) requireVersion(w http.ResponseWriter, r *http.Request) (int64, bool) {
	header := r.Header.Get(api.IfMatchHeader)
	if header == "" {
		writeError(w, h.logger, http.StatusPreconditionRequired, "missing If-Match header", "")
		return 0, false
	}

	version, err := api.ParseVersion(header)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid If-Match header", err.Error())
		return 0, false
	}

	return version, true
}

func (h *ItemsHandler) invalidate(collection, id string) {
	if h.cache != nil {
		h.cache.Delete(cacheKey(collection, id))
	}
}

// cacheKey разделяет коллекцию и id нулевым байтом: в именах коллекций допустим ':'
func cacheKey(collection, id string) string {
	return collection + "\x00" + id
}

func toItemResponse(item *models.RemoteItem) api.ItemResponse {
	return api.ItemResponse{
		Collection: item.Collection,
		ID:         item.ID,
		Data:       item.Data,
		Version:    item.Version,
		UpdatedAt:  item.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg, details string) {
	writeJSON(w, logger, status, api.ErrorResponse{Error: msg, Message: details})
}
