package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tavinote/backend/internal/planner"
	"go.uber.org/zap"
)

type reminderView struct {
	planner.Reminder
	Status string `json:"status,omitempty"`
}

// handleTripOverview serves the derived dashboard for a trip: preparation
// progress with its growth stage, the departure countdown, packing progress,
// the budget summary and classified reminders.
func (h *httpHandler) handleTripOverview(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}

	today := h.clock()
	progress := planner.Progress(trip.Todos)
	days, known := planner.DaysUntil(trip.Date, today)

	reminders := make([]reminderView, 0, len(trip.Reminders))
	for _, reminder := range planner.SortedReminders(trip.Reminders) {
		reminders = append(reminders, reminderView{
			Reminder: reminder,
			Status:   planner.ReminderStatus(reminder, today),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"progress":        progress,
		"stage":           planner.StageFor(progress),
		"countdown":       planner.Countdown(days, known),
		"packingProgress": planner.PackingProgress(trip.Packing),
		"packing":         planner.PackingByCategory(trip.Packing),
		"budget":          planner.SummarizeBudget(trip),
		"todos":           planner.SortedTodos(trip.Todos),
		"reminders":       reminders,
	})
}

// handleTripCalendar projects the trip onto a month grid. Year and month
// default to the current date when the query parameters are absent.
func (h *httpHandler) handleTripCalendar(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}

	today := h.clock()
	year := today.Year()
	month := today.Month()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_year"})
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_month"})
			return
		}
		month = time.Month(parsed)
	}

	c.JSON(http.StatusOK, planner.BuildMonthGrid(year, month, trip, today))
}

// handleTripLedger serves the expense view: category totals plus the
// splitting result when the trip qualifies for one.
func (h *httpHandler) handleTripLedger(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}

	response := gin.H{
		"expenses":   planner.SortedExpenses(trip.Expenses),
		"categories": planner.CategoryTotals(trip.Expenses),
		"total":      planner.GrandTotal(trip.Expenses),
	}
	if split, ok := planner.Split(trip.Expenses, planner.ParseRoster(trip.Members)); ok {
		response["split"] = split
	}
	c.JSON(http.StatusOK, response)
}

type pollView struct {
	planner.Poll
	TotalVotes  int   `json:"totalVotes"`
	Percentages []int `json:"percentages"`
}

func (h *httpHandler) handleTripPolls(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}

	polls := make([]pollView, 0, len(trip.Polls))
	for _, poll := range trip.Polls {
		polls = append(polls, pollView{
			Poll:        poll,
			TotalVotes:  planner.TotalVotes(poll),
			Percentages: planner.OptionPercentages(poll),
		})
	}
	c.JSON(http.StatusOK, gin.H{"polls": polls})
}

// handleTripItinerary exports the trip's printable itinerary. The default
// representation is JSON; ?format=html renders the standalone page.
func (h *httpHandler) handleTripItinerary(c *gin.Context) {
	trip, ok := h.repository.TripByID(c.Param("tripID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip_not_found"})
		return
	}

	doc := planner.BuildItinerary(trip)
	if c.Query("format") == "html" {
		page, err := doc.RenderHTML()
		if err != nil {
			h.logger.Error("itinerary rendering failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render_failed"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
		return
	}
	c.JSON(http.StatusOK, doc)
}
