package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tavinote/backend/internal/planner"
)

type createTripPayload struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	EndDate  string `json:"endDate"`
	Members  string `json:"members"`
	Budget   string `json:"budget"`
	Template string `json:"template"`
}

type updateTripPayload struct {
	Name    *string `json:"name"`
	Date    *string `json:"date"`
	EndDate *string `json:"endDate"`
	Members *string `json:"members"`
	Budget  *string `json:"budget"`
}

func (h *httpHandler) handleListTrips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trips": h.repository.Trips()})
}

func (h *httpHandler) handleCreateTrip(c *gin.Context) {
	var payload createTripPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	trip, err := h.repository.CreateTrip(c.Request.Context(), planner.CreateTripParams{
		Name:     payload.Name,
		Date:     payload.Date,
		EndDate:  payload.EndDate,
		Members:  payload.Members,
		Budget:   payload.Budget,
		Template: payload.Template,
	})
	h.respondCreated(c, trip.ID, trip, err)
}

func (h *httpHandler) handleGetTrip(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *httpHandler) handleUpdateTrip(c *gin.Context) {
	var payload updateTripPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}

	err := h.repository.UpdateTrip(c.Request.Context(), c.Param("tripID"), planner.TripUpdate{
		Name:    payload.Name,
		Date:    payload.Date,
		EndDate: payload.EndDate,
		Members: payload.Members,
		Budget:  payload.Budget,
	})
	h.respondMutation(c, err)
}

func (h *httpHandler) handleDeleteTrip(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteTrip(c.Request.Context(), c.Param("tripID")))
}

type addMemoPayload struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

func (h *httpHandler) handleListMemos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"memos": h.repository.Memos()})
}

func (h *httpHandler) handleAddMemo(c *gin.Context) {
	var payload addMemoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	memo, err := h.repository.AddMemo(c.Request.Context(), payload.Text, payload.Color)
	h.respondCreated(c, memo.ID, memo, err)
}

func (h *httpHandler) handleDeleteMemo(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteMemo(c.Request.Context(), c.Param("memoID")))
}

type searchMemoPayload struct {
	Text string `json:"text"`
}

func (h *httpHandler) handleGetSearchMemo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"text": h.repository.SearchMemo()})
}

func (h *httpHandler) handleSetSearchMemo(c *gin.Context) {
	var payload searchMemoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.SetSearchMemo(c.Request.Context(), payload.Text))
}

type settingsPayload struct {
	DarkMode bool `json:"darkMode"`
}

func (h *httpHandler) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, settingsPayload{DarkMode: h.repository.DarkMode()})
}

func (h *httpHandler) handleSetSettings(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.SetDarkMode(c.Request.Context(), payload.DarkMode))
}
