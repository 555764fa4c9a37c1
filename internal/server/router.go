package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tavinote/backend/internal/lookup"
	"github.com/tavinote/backend/internal/planner"
	"go.uber.org/zap"
)

var errMissingRepository = errors.New("planner repository dependency required")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lookup.Coordinates, error)
}

// RateProvider resolves a base/quote currency pair to an exchange rate.
type RateProvider interface {
	Rate(ctx context.Context, base, quote string) (float64, error)
}

// NearbyProvider searches points of interest around a coordinate.
type NearbyProvider interface {
	Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]lookup.NearbyPlace, error)
}

// Dependencies bundles everything the HTTP handler needs. The lookup
// providers are optional; their endpoints answer unavailable when unset.
type Dependencies struct {
	Repository *planner.Repository
	Geocoder   Geocoder
	Rates      RateProvider
	Nearby     NearbyProvider
	Clock      func() time.Time
	Logger     *zap.Logger
}

// NewHTTPHandler builds the gin router for the planner API.
func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.Repository == nil {
		return nil, errMissingRepository
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	handler := &httpHandler{
		repository: deps.Repository,
		geocoder:   deps.Geocoder,
		rates:      deps.Rates,
		nearby:     deps.Nearby,
		clock:      clock,
		logger:     logger,
	}

	router.GET("/trips", handler.handleListTrips)
	router.POST("/trips", handler.handleCreateTrip)
	router.GET("/trips/:tripID", handler.handleGetTrip)
	router.PATCH("/trips/:tripID", handler.handleUpdateTrip)
	router.DELETE("/trips/:tripID", handler.handleDeleteTrip)

	router.POST("/trips/:tripID/todos", handler.handleAddTodo)
	router.POST("/trips/:tripID/todos/:itemID/toggle", handler.handleToggleTodo)
	router.PATCH("/trips/:tripID/todos/:itemID", handler.handleEditTodo)
	router.DELETE("/trips/:tripID/todos/:itemID", handler.handleDeleteTodo)

	router.POST("/trips/:tripID/places", handler.handleAddPlace)
	router.POST("/trips/:tripID/places/:itemID/toggle", handler.handleTogglePlaceFav)
	router.PATCH("/trips/:tripID/places/:itemID", handler.handleEditPlace)
	router.DELETE("/trips/:tripID/places/:itemID", handler.handleDeletePlace)

	router.POST("/trips/:tripID/diary", handler.handleAddDiaryEntry)
	router.PATCH("/trips/:tripID/diary/:itemID", handler.handleEditDiaryEntry)
	router.DELETE("/trips/:tripID/diary/:itemID", handler.handleDeleteDiaryEntry)

	router.POST("/trips/:tripID/schedule", handler.handleAddScheduleItem)
	router.PATCH("/trips/:tripID/schedule/:itemID", handler.handleEditScheduleItem)
	router.DELETE("/trips/:tripID/schedule/:itemID", handler.handleDeleteScheduleItem)

	router.POST("/trips/:tripID/tickets", handler.handleAddTicket)
	router.PATCH("/trips/:tripID/tickets/:itemID", handler.handleEditTicket)
	router.DELETE("/trips/:tripID/tickets/:itemID", handler.handleDeleteTicket)

	router.POST("/trips/:tripID/packing", handler.handleAddPackingItem)
	router.POST("/trips/:tripID/packing/template", handler.handleApplyPackingTemplate)
	router.POST("/trips/:tripID/packing/:itemID/toggle", handler.handleTogglePackingItem)
	router.PATCH("/trips/:tripID/packing/:itemID", handler.handleEditPackingItem)
	router.DELETE("/trips/:tripID/packing/:itemID", handler.handleDeletePackingItem)

	router.POST("/trips/:tripID/expenses", handler.handleAddExpense)
	router.PATCH("/trips/:tripID/expenses/:itemID", handler.handleEditExpense)
	router.DELETE("/trips/:tripID/expenses/:itemID", handler.handleDeleteExpense)

	router.POST("/trips/:tripID/polls", handler.handleAddPoll)
	router.POST("/trips/:tripID/polls/:itemID/vote", handler.handleVote)
	router.PATCH("/trips/:tripID/polls/:itemID", handler.handleEditPoll)
	router.DELETE("/trips/:tripID/polls/:itemID", handler.handleDeletePoll)

	router.POST("/trips/:tripID/reminders", handler.handleAddReminder)
	router.PATCH("/trips/:tripID/reminders/:itemID", handler.handleEditReminder)
	router.DELETE("/trips/:tripID/reminders/:itemID", handler.handleDeleteReminder)

	router.GET("/trips/:tripID/overview", handler.handleTripOverview)
	router.GET("/trips/:tripID/calendar", handler.handleTripCalendar)
	router.GET("/trips/:tripID/ledger", handler.handleTripLedger)
	router.GET("/trips/:tripID/polls", handler.handleTripPolls)
	router.GET("/trips/:tripID/itinerary", handler.handleTripItinerary)

	router.GET("/memos", handler.handleListMemos)
	router.POST("/memos", handler.handleAddMemo)
	router.DELETE("/memos/:memoID", handler.handleDeleteMemo)
	router.GET("/search-memo", handler.handleGetSearchMemo)
	router.PUT("/search-memo", handler.handleSetSearchMemo)
	router.GET("/settings", handler.handleGetSettings)
	router.PUT("/settings", handler.handleSetSettings)

	router.GET("/lookup/geocode", handler.handleGeocode)
	router.GET("/lookup/rate", handler.handleRate)
	router.GET("/lookup/nearby", handler.handleNearby)

	return router, nil
}

type httpHandler struct {
	repository *planner.Repository
	geocoder   Geocoder
	rates      RateProvider
	nearby     NearbyProvider
	clock      func() time.Time
	logger     *zap.Logger
}

// respondMutation maps repository outcomes onto HTTP statuses: validation
// failures reject with 400, persistence failures with 500, and everything
// else (including silent no-ops on missing ids) answers 204.
func (h *httpHandler) respondMutation(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, planner.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "message": err.Error()})
	default:
		h.logger.Error("repository mutation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed"})
	}
}

// respondCreated answers an add operation: the created entity on success,
// 204 when the parent trip was missing (silent no-op), 400 on validation
// failure.
func (h *httpHandler) respondCreated(c *gin.Context, entityID string, entity any, err error) {
	switch {
	case errors.Is(err, planner.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "message": err.Error()})
	case err != nil:
		h.logger.Error("repository add failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "persistence_failed"})
	case entityID == "":
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusCreated, entity)
	}
}
