package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// entryService is the CRUD surface shared by the nutrition, growth and
// symptom trackers.
type entryService[M, R any] interface {
	CreateEntry(ctx context.Context, userID uuid.UUID, req *R) (*M, error)
	GetEntry(ctx context.Context, userID, id uuid.UUID) (*M, error)
	ListEntries(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]M, error)
	RecentEntries(ctx context.Context, userID uuid.UUID, limit int) ([]M, error)
	UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *R) (*M, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
}

// EntryHandler serves one tracker's entries to their owner.
type EntryHandler[M, R any] struct {
	service  entryService[M, R]
	location *time.Location
}

func NewEntryHandler[M, R any](svc entryService[M, R], location *time.Location) *EntryHandler[M, R] {
	if location == nil {
		location = time.UTC
	}
	return &EntryHandler[M, R]{service: svc, location: location}
}

func (h *EntryHandler[M, R]) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *EntryHandler[M, R]) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// List returns the entries between start and end when both are given, and
// the latest entries otherwise.
func (h *EntryHandler[M, R]) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	start, end, ranged, err := rangeQuery(c, h.location)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var entries []M
	if ranged {
		entries, err = h.service.ListEntries(c.Request.Context(), userID, start, end)
	} else {
		limit, lerr := limitQuery(c)
		if lerr != nil {
			badRequest(c, lerr.Error())
			return
		}
		entries, err = h.service.RecentEntries(c.Request.Context(), userID, limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *EntryHandler[M, R]) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.service.GetEntry(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler[M, R]) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.UpdateEntry(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler[M, R]) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
