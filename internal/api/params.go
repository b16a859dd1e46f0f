package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/growplate/backend/internal/dates"
	"github.com/pageza/growplate/backend/internal/middleware"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// currentUser returns the caller's id, answering 401 when it is missing.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, middleware.ErrorResponse{Error: "unauthorized"})
	}
	return userID, ok
}

func entryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid entry id")
		return uuid.Nil, false
	}
	return id, true
}

// intQuery reads an integer query parameter, falling back to def when absent.
func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

// dateQuery reads a YYYY-MM-DD query parameter in loc, falling back to now.
func dateQuery(c *gin.Context, name string, loc *time.Location) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Now().In(loc), nil
	}
	t, err := dates.Parse(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return t, nil
}

// rangeQuery reads start and end dates covering whole local days. ok is false
// when neither is present.
func rangeQuery(c *gin.Context, loc *time.Location) (start, end time.Time, ok bool, err error) {
	rawStart, rawEnd := c.Query("start"), c.Query("end")
	if rawStart == "" && rawEnd == "" {
		return time.Time{}, time.Time{}, false, nil
	}
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, false, errors.New("start and end must be given together")
	}

	s, err := dates.Parse(rawStart, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false, errors.New("start must be a date in YYYY-MM-DD format")
	}
	e, err := dates.Parse(rawEnd, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false, errors.New("end must be a date in YYYY-MM-DD format")
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, false, errors.New("end must not be before start")
	}
	return dates.StartOfDay(s, loc), dates.EndOfDay(e, loc), true, nil
}

func limitQuery(c *gin.Context) (int, error) {
	limit, err := intQuery(c, "limit", defaultListLimit)
	if err != nil {
		return 0, err
	}
	if limit <= 0 || limit > maxListLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxListLimit)
	}
	return limit, nil
}
