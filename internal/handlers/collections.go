package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/garageflow/garageflow/internal/store"
)

// CollectionHandler exposes raw collection documents: the read/write
// endpoints the dashboards use to hydrate and replace whole collections.
type CollectionHandler struct {
	store *store.Store
}

// NewCollectionHandler creates a collection handler over the store.
func NewCollectionHandler(s *store.Store) *CollectionHandler {
	return &CollectionHandler{store: s}
}

// Get handles GET /api/collections/:name and returns the in-memory
// wrapper document for the collection.
func (h *CollectionHandler) Get(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "MISSING_COLLECTION", "Collection name is required")
		return
	}

	doc, err := h.store.Collection(name)
	if err != nil {
		if errors.Is(err, store.ErrUnknownCollection) {
			respondError(c, http.StatusBadRequest, "UNKNOWN_COLLECTION", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "STORAGE_ERROR", err.Error())
		return
	}

	c.Data(http.StatusOK, "application/json", doc)
}

// Post handles POST /api/collections/:name and replaces the collection
// document. The write to disk happens asynchronously; the in-memory
// state is updated before responding.
func (h *CollectionHandler) Post(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "MISSING_COLLECTION", "Collection name is required")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_BODY", "Failed to read request body")
		return
	}

	if err := h.store.ReplaceCollection(name, body); err != nil {
		if errors.Is(err, store.ErrUnknownCollection) {
			respondError(c, http.StatusBadRequest, "UNKNOWN_COLLECTION", err.Error())
			return
		}
		respondError(c, http.StatusBadRequest, "INVALID_DOCUMENT", err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"collection": name})
}
