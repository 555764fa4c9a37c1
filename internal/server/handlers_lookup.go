package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tavinote/backend/internal/lookup"
	"go.uber.org/zap"
)

// respondLookupError maps provider failures onto the API surface: an
// unreachable or malformed provider answers 502, an empty result 404.
func (h *httpHandler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lookup.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.Is(err, lookup.ErrUnavailable):
		h.logger.Warn("lookup provider unavailable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "lookup_unavailable"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": err.Error()})
	}
}

func (h *httpHandler) handleGeocode(c *gin.Context) {
	if h.geocoder == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "lookup_unavailable"})
		return
	}
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "address is required"})
		return
	}

	coords, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, coords)
}

func (h *httpHandler) handleRate(c *gin.Context) {
	if h.rates == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "lookup_unavailable"})
		return
	}
	base := c.Query("base")
	quote := c.Query("quote")
	if base == "" || quote == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "base and quote are required"})
		return
	}

	rate, err := h.rates.Rate(c.Request.Context(), base, quote)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	response := gin.H{"base": base, "quote": quote, "rate": rate}
	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "amount must be a number"})
			return
		}
		response["converted"] = lookup.Convert(amount, rate)
	}
	c.JSON(http.StatusOK, response)
}

func (h *httpHandler) handleNearby(c *gin.Context) {
	if h.nearby == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "lookup_unavailable"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "lat and lon are required"})
		return
	}
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "category is required"})
		return
	}
	radius := 0
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_query", "message": "radius must be an integer"})
			return
		}
		radius = parsed
	}

	places, err := h.nearby.Search(c.Request.Context(), lat, lon, radius, category)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": places})
}
