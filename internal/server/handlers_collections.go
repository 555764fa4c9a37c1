package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tavinote/backend/internal/planner"
)

type todoPayload struct {
	Text     string `json:"text"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

type todoUpdatePayload struct {
	Text     *string `json:"text"`
	Deadline *string `json:"deadline"`
	Priority *string `json:"priority"`
}

func (h *httpHandler) handleAddTodo(c *gin.Context) {
	var payload todoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	todo, err := h.repository.AddTodo(c.Request.Context(), c.Param("tripID"), planner.TodoParams{
		Text:     payload.Text,
		Deadline: payload.Deadline,
		Priority: planner.Priority(payload.Priority),
	})
	h.respondCreated(c, todo.ID, todo, err)
}

func (h *httpHandler) handleToggleTodo(c *gin.Context) {
	h.respondMutation(c, h.repository.ToggleTodo(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

func (h *httpHandler) handleEditTodo(c *gin.Context) {
	var payload todoUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	update := planner.TodoUpdate{Text: payload.Text, Deadline: payload.Deadline}
	if payload.Priority != nil {
		priority := planner.Priority(*payload.Priority)
		update.Priority = &priority
	}
	h.respondMutation(c, h.repository.EditTodo(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), update))
}

func (h *httpHandler) handleDeleteTodo(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteTodo(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type placePayload struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Memo     string   `json:"memo"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

type placeUpdatePayload struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Memo     *string  `json:"memo"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

func (h *httpHandler) handleAddPlace(c *gin.Context) {
	var payload placePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	place, err := h.repository.AddPlace(c.Request.Context(), c.Param("tripID"), planner.PlaceParams{
		Name:     payload.Name,
		Category: payload.Category,
		Memo:     payload.Memo,
		Lat:      payload.Lat,
		Lon:      payload.Lon,
	})
	h.respondCreated(c, place.ID, place, err)
}

func (h *httpHandler) handleTogglePlaceFav(c *gin.Context) {
	h.respondMutation(c, h.repository.TogglePlaceFav(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

func (h *httpHandler) handleEditPlace(c *gin.Context) {
	var payload placeUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditPlace(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.PlaceUpdate{
		Name:     payload.Name,
		Category: payload.Category,
		Memo:     payload.Memo,
		Lat:      payload.Lat,
		Lon:      payload.Lon,
	}))
}

func (h *httpHandler) handleDeletePlace(c *gin.Context) {
	h.respondMutation(c, h.repository.DeletePlace(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type diaryPayload struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Photo   string `json:"photo"`
}

type diaryUpdatePayload struct {
	Date    *string `json:"date"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Photo   *string `json:"photo"`
}

func (h *httpHandler) handleAddDiaryEntry(c *gin.Context) {
	var payload diaryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	entry, err := h.repository.AddDiaryEntry(c.Request.Context(), c.Param("tripID"), planner.DiaryParams{
		Date:    payload.Date,
		Title:   payload.Title,
		Content: payload.Content,
		Photo:   payload.Photo,
	})
	h.respondCreated(c, entry.ID, entry, err)
}

func (h *httpHandler) handleEditDiaryEntry(c *gin.Context) {
	var payload diaryUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditDiaryEntry(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.DiaryUpdate{
		Date:    payload.Date,
		Title:   payload.Title,
		Content: payload.Content,
		Photo:   payload.Photo,
	}))
}

func (h *httpHandler) handleDeleteDiaryEntry(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteDiaryEntry(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type schedulePayload struct {
	Date      string `json:"date"`
	Text      string `json:"text"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Memo      string `json:"memo"`
}

type scheduleUpdatePayload struct {
	Date      *string `json:"date"`
	Text      *string `json:"text"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Memo      *string `json:"memo"`
}

func (h *httpHandler) handleAddScheduleItem(c *gin.Context) {
	var payload schedulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	item, err := h.repository.AddScheduleItem(c.Request.Context(), c.Param("tripID"), planner.ScheduleParams{
		Date:      payload.Date,
		Text:      payload.Text,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Memo:      payload.Memo,
	})
	h.respondCreated(c, item.ID, item, err)
}

func (h *httpHandler) handleEditScheduleItem(c *gin.Context) {
	var payload scheduleUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditScheduleItem(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.ScheduleUpdate{
		Date:      payload.Date,
		Text:      payload.Text,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Memo:      payload.Memo,
	}))
}

func (h *httpHandler) handleDeleteScheduleItem(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteScheduleItem(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type ticketPayload struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Code  string `json:"code"`
	Date  string `json:"date"`
	Memo  string `json:"memo"`
	Image string `json:"image"`
}

type ticketUpdatePayload struct {
	Type  *string `json:"type"`
	Title *string `json:"title"`
	Code  *string `json:"code"`
	Date  *string `json:"date"`
	Memo  *string `json:"memo"`
	Image *string `json:"image"`
}

func (h *httpHandler) handleAddTicket(c *gin.Context) {
	var payload ticketPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	ticket, err := h.repository.AddTicket(c.Request.Context(), c.Param("tripID"), planner.TicketParams{
		Type:  payload.Type,
		Title: payload.Title,
		Code:  payload.Code,
		Date:  payload.Date,
		Memo:  payload.Memo,
		Image: payload.Image,
	})
	h.respondCreated(c, ticket.ID, ticket, err)
}

func (h *httpHandler) handleEditTicket(c *gin.Context) {
	var payload ticketUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditTicket(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.TicketUpdate{
		Type:  payload.Type,
		Title: payload.Title,
		Code:  payload.Code,
		Date:  payload.Date,
		Memo:  payload.Memo,
		Image: payload.Image,
	}))
}

func (h *httpHandler) handleDeleteTicket(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteTicket(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type packingPayload struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type packingTemplatePayload struct {
	Template string `json:"template"`
}

func (h *httpHandler) handleAddPackingItem(c *gin.Context) {
	var payload packingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	item, err := h.repository.AddPackingItem(c.Request.Context(), c.Param("tripID"), payload.Name, payload.Category)
	h.respondCreated(c, item.ID, item, err)
}

func (h *httpHandler) handleApplyPackingTemplate(c *gin.Context) {
	var payload packingTemplatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	added, err := h.repository.ApplyPackingTemplate(c.Request.Context(), c.Param("tripID"), payload.Template)
	if err != nil {
		h.respondMutation(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

type packingUpdatePayload struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

func (h *httpHandler) handleEditPackingItem(c *gin.Context) {
	var payload packingUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditPackingItem(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.PackingUpdate{
		Name:     payload.Name,
		Category: payload.Category,
	}))
}

func (h *httpHandler) handleTogglePackingItem(c *gin.Context) {
	h.respondMutation(c, h.repository.TogglePackingItem(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

func (h *httpHandler) handleDeletePackingItem(c *gin.Context) {
	h.respondMutation(c, h.repository.DeletePackingItem(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type expensePayload struct {
	Title    string `json:"title"`
	Amount   int    `json:"amount"`
	Category string `json:"category"`
	Payer    string `json:"payer"`
	Date     string `json:"date"`
}

type expenseUpdatePayload struct {
	Title    *string `json:"title"`
	Amount   *int    `json:"amount"`
	Category *string `json:"category"`
	Payer    *string `json:"payer"`
	Date     *string `json:"date"`
}

func (h *httpHandler) handleAddExpense(c *gin.Context) {
	var payload expensePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	expense, err := h.repository.AddExpense(c.Request.Context(), c.Param("tripID"), planner.ExpenseParams{
		Title:    payload.Title,
		Amount:   payload.Amount,
		Category: payload.Category,
		Payer:    payload.Payer,
		Date:     payload.Date,
	})
	h.respondCreated(c, expense.ID, expense, err)
}

func (h *httpHandler) handleEditExpense(c *gin.Context) {
	var payload expenseUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditExpense(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.ExpenseUpdate{
		Title:    payload.Title,
		Amount:   payload.Amount,
		Category: payload.Category,
		Payer:    payload.Payer,
		Date:     payload.Date,
	}))
}

func (h *httpHandler) handleDeleteExpense(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteExpense(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type pollPayload struct {
	Question string `json:"question"`
	Options  string `json:"options"`
}

type votePayload struct {
	OptionIndex int `json:"optionIndex"`
}

func (h *httpHandler) handleAddPoll(c *gin.Context) {
	var payload pollPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	poll, err := h.repository.AddPoll(c.Request.Context(), c.Param("tripID"), payload.Question, payload.Options)
	h.respondCreated(c, poll.ID, poll, err)
}

func (h *httpHandler) handleVote(c *gin.Context) {
	var payload votePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.Vote(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), payload.OptionIndex))
}

type pollUpdatePayload struct {
	Question *string `json:"question"`
}

func (h *httpHandler) handleEditPoll(c *gin.Context) {
	var payload pollUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditPoll(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.PollUpdate{
		Question: payload.Question,
	}))
}

func (h *httpHandler) handleDeletePoll(c *gin.Context) {
	h.respondMutation(c, h.repository.DeletePoll(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}

type reminderPayload struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

func (h *httpHandler) handleAddReminder(c *gin.Context) {
	var payload reminderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	reminder, err := h.repository.AddReminder(c.Request.Context(), c.Param("tripID"), payload.Text, payload.Date)
	h.respondCreated(c, reminder.ID, reminder, err)
}

type reminderUpdatePayload struct {
	Text *string `json:"text"`
	Date *string `json:"date"`
}

func (h *httpHandler) handleEditReminder(c *gin.Context) {
	var payload reminderUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payload"})
		return
	}
	h.respondMutation(c, h.repository.EditReminder(c.Request.Context(), c.Param("tripID"), c.Param("itemID"), planner.ReminderUpdate{
		Text: payload.Text,
		Date: payload.Date,
	}))
}

func (h *httpHandler) handleDeleteReminder(c *gin.Context) {
	h.respondMutation(c, h.repository.DeleteReminder(c.Request.Context(), c.Param("tripID"), c.Param("itemID")))
}
