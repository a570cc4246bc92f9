package handlers

import (
	"context"
	"errors"
	"net/http"

	"catalogBack/internal/models"
)

// ItemService is the slice of the service layer the item handler relies on.
type ItemService interface {
	CreateItem(ctx context.Context, draft models.ItemDraft) (models.Item, error)
	GetItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id string) (models.Item, error)
	ReplaceItem(ctx context.Context, id string, draft models.ItemDraft) (models.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

type ItemHandler struct {
	Service ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	draft, err := models.ParseItemDraft(r.Body)
	if err != nil {
		respondDraftError(w, err)
		return
	}

	item, err := h.Service.CreateItem(r.Context(), draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItems(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	draft, err := models.ParseItemDraft(r.Body)
	if err != nil {
		respondDraftError(w, err)
		return
	}

	item, err := h.Service.ReplaceItem(r.Context(), id, draft)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing item id")
		return
	}

	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondDraftError maps body parsing failures: field-level problems get a
// 422 with details, everything else is a plain bad request.
func respondDraftError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}
