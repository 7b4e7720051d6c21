// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pdiddy/restaurant-lookup/internal/places"
	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// errorBody is the JSON shape of every failure response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// requestID tags each request with the caller's X-Request-ID or a new UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) handleLookup(c *gin.Context) {
	start := time.Now()
	id := c.GetString(requestIDKey)

	var req types.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.observe(places.KindInvalidInput.String(), start)
		c.JSON(http.StatusBadRequest, errorBody{Error: "Invalid request body", Message: err.Error()})
		return
	}

	res, err := s.looker.Lookup(c.Request.Context(), req)
	if err != nil {
		kind := places.KindOf(err)
		s.metrics.observe(kind.String(), start)
		s.log.Printf("[%s] lookup %q failed: %v", id, req.RestaurantName, err)
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	s.metrics.observe(outcomeOK, start)
	s.log.Printf("[%s] resolved %q -> %s", id, res.Query, res.PlaceID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res.Restaurant})
}

// errorResponse maps a lookup error to a status code and body.
func errorResponse(err error) (int, errorBody) {
	var perr *places.Error
	if !errors.As(err, &perr) {
		return http.StatusInternalServerError, errorBody{Error: "Failed to fetch restaurant data", Message: err.Error()}
	}

	switch perr.Kind {
	case places.KindInvalidInput:
		return http.StatusBadRequest, errorBody{Error: "Invalid request", Message: perr.Msg}
	case places.KindMissingConfig:
		return http.StatusInternalServerError, errorBody{Error: "API key not configured"}
	case places.KindNotFound:
		if perr.Op == places.OpDetails {
			return http.StatusNotFound, errorBody{Error: "Could not fetch place details"}
		}
		return http.StatusNotFound, errorBody{Error: "Restaurant not found", Message: perr.Msg}
	default:
		return http.StatusBadGateway, errorBody{Error: "Failed to fetch restaurant data", Message: perr.Error()}
	}
}
