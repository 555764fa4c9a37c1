package planner

import (
	"context"
	"strings"
)

const (
	opAddTodo              = "planner.add_todo"
	opToggleTodo           = "planner.toggle_todo"
	opEditTodo             = "planner.edit_todo"
	opDeleteTodo           = "planner.delete_todo"
	opAddPlace             = "planner.add_place"
	opTogglePlaceFav       = "planner.toggle_place_fav"
	opEditPlace            = "planner.edit_place"
	opDeletePlace          = "planner.delete_place"
	opAddDiaryEntry        = "planner.add_diary_entry"
	opEditDiaryEntry       = "planner.edit_diary_entry"
	opDeleteDiaryEntry     = "planner.delete_diary_entry"
	opAddScheduleItem      = "planner.add_schedule_item"
	opEditScheduleItem     = "planner.edit_schedule_item"
	opDeleteScheduleItem   = "planner.delete_schedule_item"
	opAddTicket            = "planner.add_ticket"
	opEditTicket           = "planner.edit_ticket"
	opDeleteTicket         = "planner.delete_ticket"
	opAddPackingItem       = "planner.add_packing_item"
	opTogglePackingItem    = "planner.toggle_packing_item"
	opEditPackingItem      = "planner.edit_packing_item"
	opDeletePackingItem    = "planner.delete_packing_item"
	opApplyPackingTemplate = "planner.apply_packing_template"
	opAddExpense           = "planner.add_expense"
	opEditExpense          = "planner.edit_expense"
	opDeleteExpense        = "planner.delete_expense"
	opAddPoll              = "planner.add_poll"
	opVote                 = "planner.vote"
	opEditPoll             = "planner.edit_poll"
	opDeletePoll           = "planner.delete_poll"
	opAddReminder          = "planner.add_reminder"
	opEditReminder         = "planner.edit_reminder"
	opDeleteReminder       = "planner.delete_reminder"
)

// TodoParams describes the inputs of AddTodo.
type TodoParams struct {
	Text     string
	Deadline string
	Priority Priority
}

// AddTodo appends a todo to the trip with done defaulting to false. A
// missing trip id is a silent no-op reported as a zero Todo.
func (r *Repository) AddTodo(ctx context.Context, tripID string, params TodoParams) (Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := strings.TrimSpace(params.Text)
	if text == "" {
		return Todo{}, ErrEmptyTodoText
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddTodo, tripID)
		return Todo{}, nil
	}

	todoID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddTodo, "id_generation_failed", err)
		return Todo{}, newRepositoryError(opAddTodo, "id_generation_failed", err)
	}

	priority := params.Priority
	if priority != PriorityHigh && priority != PriorityMedium && priority != PriorityLow {
		priority = PriorityMedium
	}
	todo := Todo{ID: todoID, Text: text, Deadline: params.Deadline, Priority: priority, Done: false}
	trip.Todos = append(trip.Todos, todo)
	if err := r.persist(ctx, opAddTodo); err != nil {
		return Todo{}, err
	}
	return todo, nil
}

// ToggleTodo flips the done flag. Missing trip or todo ids are silent no-ops.
func (r *Repository) ToggleTodo(ctx context.Context, tripID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opToggleTodo, tripID)
		return nil
	}
	for i := range trip.Todos {
		if trip.Todos[i].ID == todoID {
			trip.Todos[i].Done = !trip.Todos[i].Done
			return r.persist(ctx, opToggleTodo)
		}
	}
	r.logMiss(opToggleTodo, todoID)
	return nil
}

// TodoUpdate carries the fields EditTodo should replace.
type TodoUpdate struct {
	Text     *string
	Deadline *string
	Priority *Priority
}

// EditTodo replaces the provided fields on a todo.
func (r *Repository) EditTodo(ctx context.Context, tripID, todoID string, update TodoUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditTodo, tripID)
		return nil
	}
	for i := range trip.Todos {
		if trip.Todos[i].ID != todoID {
			continue
		}
		if update.Text != nil {
			trimmed := strings.TrimSpace(*update.Text)
			if trimmed == "" {
				return ErrEmptyTodoText
			}
			trip.Todos[i].Text = trimmed
		}
		if update.Deadline != nil {
			trip.Todos[i].Deadline = *update.Deadline
		}
		if update.Priority != nil {
			trip.Todos[i].Priority = *update.Priority
		}
		return r.persist(ctx, opEditTodo)
	}
	r.logMiss(opEditTodo, todoID)
	return nil
}

// DeleteTodo removes a todo by id, silently ignoring unknown ids.
func (r *Repository) DeleteTodo(ctx context.Context, tripID, todoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteTodo, tripID)
		return nil
	}
	kept, found := trip.Todos[:0], false
	for _, todo := range trip.Todos {
		if todo.ID == todoID {
			found = true
			continue
		}
		kept = append(kept, todo)
	}
	if !found {
		r.logMiss(opDeleteTodo, todoID)
		return nil
	}
	trip.Todos = kept
	return r.persist(ctx, opDeleteTodo)
}

// PlaceParams describes the inputs of AddPlace.
type PlaceParams struct {
	Name     string
	Category string
	Memo     string
	Lat      *float64
	Lon      *float64
}

// AddPlace appends a place with fav defaulting to false.
func (r *Repository) AddPlace(ctx context.Context, tripID string, params PlaceParams) (Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return Place{}, ErrEmptyPlaceName
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddPlace, tripID)
		return Place{}, nil
	}

	placeID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddPlace, "id_generation_failed", err)
		return Place{}, newRepositoryError(opAddPlace, "id_generation_failed", err)
	}

	place := Place{
		ID:       placeID,
		Name:     name,
		Category: params.Category,
		Memo:     strings.TrimSpace(params.Memo),
		Lat:      params.Lat,
		Lon:      params.Lon,
		Fav:      false,
	}
	trip.Places = append(trip.Places, place)
	if err := r.persist(ctx, opAddPlace); err != nil {
		return Place{}, err
	}
	return place, nil
}

// TogglePlaceFav flips the favorite flag on a place.
func (r *Repository) TogglePlaceFav(ctx context.Context, tripID, placeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opTogglePlaceFav, tripID)
		return nil
	}
	for i := range trip.Places {
		if trip.Places[i].ID == placeID {
			trip.Places[i].Fav = !trip.Places[i].Fav
			return r.persist(ctx, opTogglePlaceFav)
		}
	}
	r.logMiss(opTogglePlaceFav, placeID)
	return nil
}

// PlaceUpdate carries the fields EditPlace should replace.
type PlaceUpdate struct {
	Name     *string
	Category *string
	Memo     *string
	Lat      *float64
	Lon      *float64
}

// EditPlace replaces the provided fields on a place.
func (r *Repository) EditPlace(ctx context.Context, tripID, placeID string, update PlaceUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditPlace, tripID)
		return nil
	}
	for i := range trip.Places {
		if trip.Places[i].ID != placeID {
			continue
		}
		if update.Name != nil {
			trimmed := strings.TrimSpace(*update.Name)
			if trimmed == "" {
				return ErrEmptyPlaceName
			}
			trip.Places[i].Name = trimmed
		}
		if update.Category != nil {
			trip.Places[i].Category = *update.Category
		}
		if update.Memo != nil {
			trip.Places[i].Memo = strings.TrimSpace(*update.Memo)
		}
		if update.Lat != nil {
			trip.Places[i].Lat = update.Lat
		}
		if update.Lon != nil {
			trip.Places[i].Lon = update.Lon
		}
		return r.persist(ctx, opEditPlace)
	}
	r.logMiss(opEditPlace, placeID)
	return nil
}

// DeletePlace removes a place by id.
func (r *Repository) DeletePlace(ctx context.Context, tripID, placeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeletePlace, tripID)
		return nil
	}
	kept, found := trip.Places[:0], false
	for _, place := range trip.Places {
		if place.ID == placeID {
			found = true
			continue
		}
		kept = append(kept, place)
	}
	if !found {
		r.logMiss(opDeletePlace, placeID)
		return nil
	}
	trip.Places = kept
	return r.persist(ctx, opDeletePlace)
}

// DiaryParams describes the inputs of AddDiaryEntry.
type DiaryParams struct {
	Date    string
	Title   string
	Content string
	Photo   string
}

// AddDiaryEntry appends a diary entry. The photo is an opaque data-URL
// string produced outside the core.
func (r *Repository) AddDiaryEntry(ctx context.Context, tripID string, params DiaryParams) (DiaryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return DiaryEntry{}, ErrEmptyDiaryTitle
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddDiaryEntry, tripID)
		return DiaryEntry{}, nil
	}

	entryID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddDiaryEntry, "id_generation_failed", err)
		return DiaryEntry{}, newRepositoryError(opAddDiaryEntry, "id_generation_failed", err)
	}

	entry := DiaryEntry{
		ID:      entryID,
		Date:    params.Date,
		Title:   title,
		Content: strings.TrimSpace(params.Content),
		Photo:   params.Photo,
	}
	trip.Diary = append(trip.Diary, entry)
	if err := r.persist(ctx, opAddDiaryEntry); err != nil {
		return DiaryEntry{}, err
	}
	return entry, nil
}

// DiaryUpdate carries the fields EditDiaryEntry should replace. An empty
// Photo pointer value keeps the stored photo.
type DiaryUpdate struct {
	Date    *string
	Title   *string
	Content *string
	Photo   *string
}

// EditDiaryEntry replaces the provided fields on a diary entry.
func (r *Repository) EditDiaryEntry(ctx context.Context, tripID, entryID string, update DiaryUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditDiaryEntry, tripID)
		return nil
	}
	for i := range trip.Diary {
		if trip.Diary[i].ID != entryID {
			continue
		}
		if update.Title != nil {
			trimmed := strings.TrimSpace(*update.Title)
			if trimmed == "" {
				return ErrEmptyDiaryTitle
			}
			trip.Diary[i].Title = trimmed
		}
		if update.Date != nil {
			trip.Diary[i].Date = *update.Date
		}
		if update.Content != nil {
			trip.Diary[i].Content = strings.TrimSpace(*update.Content)
		}
		if update.Photo != nil && *update.Photo != "" {
			trip.Diary[i].Photo = *update.Photo
		}
		return r.persist(ctx, opEditDiaryEntry)
	}
	r.logMiss(opEditDiaryEntry, entryID)
	return nil
}

// DeleteDiaryEntry removes a diary entry by id.
func (r *Repository) DeleteDiaryEntry(ctx context.Context, tripID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteDiaryEntry, tripID)
		return nil
	}
	kept, found := trip.Diary[:0], false
	for _, entry := range trip.Diary {
		if entry.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		r.logMiss(opDeleteDiaryEntry, entryID)
		return nil
	}
	trip.Diary = kept
	return r.persist(ctx, opDeleteDiaryEntry)
}

// ScheduleParams describes the inputs of AddScheduleItem.
type ScheduleParams struct {
	Date      string
	Text      string
	StartTime string
	EndTime   string
	Memo      string
}

// AddScheduleItem appends a schedule item for a calendar day.
func (r *Repository) AddScheduleItem(ctx context.Context, tripID string, params ScheduleParams) (ScheduleItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	text := strings.TrimSpace(params.Text)
	if text == "" {
		return ScheduleItem{}, ErrEmptyScheduleText
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddScheduleItem, tripID)
		return ScheduleItem{}, nil
	}

	itemID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddScheduleItem, "id_generation_failed", err)
		return ScheduleItem{}, newRepositoryError(opAddScheduleItem, "id_generation_failed", err)
	}

	item := ScheduleItem{
		ID:        itemID,
		Date:      params.Date,
		Text:      text,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
		Memo:      strings.TrimSpace(params.Memo),
	}
	trip.Schedule = append(trip.Schedule, item)
	if err := r.persist(ctx, opAddScheduleItem); err != nil {
		return ScheduleItem{}, err
	}
	return item, nil
}

// ScheduleUpdate carries the fields EditScheduleItem should replace.
type ScheduleUpdate struct {
	Date      *string
	Text      *string
	StartTime *string
	EndTime   *string
	Memo      *string
}

// EditScheduleItem replaces the provided fields on a schedule item.
func (r *Repository) EditScheduleItem(ctx context.Context, tripID, itemID string, update ScheduleUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditScheduleItem, tripID)
		return nil
	}
	for i := range trip.Schedule {
		if trip.Schedule[i].ID != itemID {
			continue
		}
		if update.Text != nil {
			trimmed := strings.TrimSpace(*update.Text)
			if trimmed == "" {
				return ErrEmptyScheduleText
			}
			trip.Schedule[i].Text = trimmed
		}
		if update.Date != nil {
			trip.Schedule[i].Date = *update.Date
		}
		if update.StartTime != nil {
			trip.Schedule[i].StartTime = *update.StartTime
		}
		if update.EndTime != nil {
			trip.Schedule[i].EndTime = *update.EndTime
		}
		if update.Memo != nil {
			trip.Schedule[i].Memo = strings.TrimSpace(*update.Memo)
		}
		return r.persist(ctx, opEditScheduleItem)
	}
	r.logMiss(opEditScheduleItem, itemID)
	return nil
}

// DeleteScheduleItem removes a schedule item by id.
func (r *Repository) DeleteScheduleItem(ctx context.Context, tripID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteScheduleItem, tripID)
		return nil
	}
	kept, found := trip.Schedule[:0], false
	for _, item := range trip.Schedule {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		r.logMiss(opDeleteScheduleItem, itemID)
		return nil
	}
	trip.Schedule = kept
	return r.persist(ctx, opDeleteScheduleItem)
}

// TicketParams describes the inputs of AddTicket.
type TicketParams struct {
	Type  string
	Title string
	Code  string
	Date  string
	Memo  string
	Image string
}

// AddTicket appends a ticket or booking record.
func (r *Repository) AddTicket(ctx context.Context, tripID string, params TicketParams) (Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return Ticket{}, ErrEmptyTicketTitle
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddTicket, tripID)
		return Ticket{}, nil
	}

	ticketID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddTicket, "id_generation_failed", err)
		return Ticket{}, newRepositoryError(opAddTicket, "id_generation_failed", err)
	}

	ticket := Ticket{
		ID:    ticketID,
		Type:  params.Type,
		Title: title,
		Code:  strings.TrimSpace(params.Code),
		Date:  params.Date,
		Memo:  strings.TrimSpace(params.Memo),
		Image: params.Image,
	}
	trip.Tickets = append(trip.Tickets, ticket)
	if err := r.persist(ctx, opAddTicket); err != nil {
		return Ticket{}, err
	}
	return ticket, nil
}

// TicketUpdate carries the fields EditTicket should replace.
type TicketUpdate struct {
	Type  *string
	Title *string
	Code  *string
	Date  *string
	Memo  *string
	Image *string
}

// EditTicket replaces the provided fields on a ticket.
func (r *Repository) EditTicket(ctx context.Context, tripID, ticketID string, update TicketUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditTicket, tripID)
		return nil
	}
	for i := range trip.Tickets {
		if trip.Tickets[i].ID != ticketID {
			continue
		}
		if update.Title != nil {
			trimmed := strings.TrimSpace(*update.Title)
			if trimmed == "" {
				return ErrEmptyTicketTitle
			}
			trip.Tickets[i].Title = trimmed
		}
		if update.Type != nil {
			trip.Tickets[i].Type = *update.Type
		}
		if update.Code != nil {
			trip.Tickets[i].Code = strings.TrimSpace(*update.Code)
		}
		if update.Date != nil {
			trip.Tickets[i].Date = *update.Date
		}
		if update.Memo != nil {
			trip.Tickets[i].Memo = strings.TrimSpace(*update.Memo)
		}
		if update.Image != nil {
			trip.Tickets[i].Image = *update.Image
		}
		return r.persist(ctx, opEditTicket)
	}
	r.logMiss(opEditTicket, ticketID)
	return nil
}

// DeleteTicket removes a ticket by id.
func (r *Repository) DeleteTicket(ctx context.Context, tripID, ticketID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteTicket, tripID)
		return nil
	}
	kept, found := trip.Tickets[:0], false
	for _, ticket := range trip.Tickets {
		if ticket.ID == ticketID {
			found = true
			continue
		}
		kept = append(kept, ticket)
	}
	if !found {
		r.logMiss(opDeleteTicket, ticketID)
		return nil
	}
	trip.Tickets = kept
	return r.persist(ctx, opDeleteTicket)
}

// AddPackingItem appends a packing item with checked defaulting to false.
func (r *Repository) AddPackingItem(ctx context.Context, tripID, name, category string) (PackingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return PackingItem{}, ErrEmptyPackingName
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddPackingItem, tripID)
		return PackingItem{}, nil
	}

	itemID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddPackingItem, "id_generation_failed", err)
		return PackingItem{}, newRepositoryError(opAddPackingItem, "id_generation_failed", err)
	}

	item := PackingItem{ID: itemID, Name: trimmed, Category: category, Checked: false}
	trip.Packing = append(trip.Packing, item)
	if err := r.persist(ctx, opAddPackingItem); err != nil {
		return PackingItem{}, err
	}
	return item, nil
}

// TogglePackingItem flips the checked flag on a packing item.
func (r *Repository) TogglePackingItem(ctx context.Context, tripID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opTogglePackingItem, tripID)
		return nil
	}
	for i := range trip.Packing {
		if trip.Packing[i].ID == itemID {
			trip.Packing[i].Checked = !trip.Packing[i].Checked
			return r.persist(ctx, opTogglePackingItem)
		}
	}
	r.logMiss(opTogglePackingItem, itemID)
	return nil
}

// PackingUpdate carries the fields EditPackingItem should replace.
type PackingUpdate struct {
	Name     *string
	Category *string
}

// EditPackingItem replaces the provided fields on a packing item.
func (r *Repository) EditPackingItem(ctx context.Context, tripID, itemID string, update PackingUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditPackingItem, tripID)
		return nil
	}
	for i := range trip.Packing {
		if trip.Packing[i].ID != itemID {
			continue
		}
		if update.Name != nil {
			trimmed := strings.TrimSpace(*update.Name)
			if trimmed == "" {
				return ErrEmptyPackingName
			}
			trip.Packing[i].Name = trimmed
		}
		if update.Category != nil {
			trip.Packing[i].Category = *update.Category
		}
		return r.persist(ctx, opEditPackingItem)
	}
	r.logMiss(opEditPackingItem, itemID)
	return nil
}

// DeletePackingItem removes a packing item by id.
func (r *Repository) DeletePackingItem(ctx context.Context, tripID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeletePackingItem, tripID)
		return nil
	}
	kept, found := trip.Packing[:0], false
	for _, item := range trip.Packing {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		r.logMiss(opDeletePackingItem, itemID)
		return nil
	}
	trip.Packing = kept
	return r.persist(ctx, opDeletePackingItem)
}

// ApplyPackingTemplate merges a named template into the trip's packing
// list, skipping items whose name is already present. Re-applying the same
// template is therefore idempotent. It returns how many items were added.
func (r *Repository) ApplyPackingTemplate(ctx context.Context, tripID, template string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := PackingTemplate(template)
	if !ok {
		return 0, ErrUnknownTemplate
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opApplyPackingTemplate, tripID)
		return 0, nil
	}

	existing := make(map[string]struct{}, len(trip.Packing))
	for _, item := range trip.Packing {
		existing[item.Name] = struct{}{}
	}

	added := 0
	for _, item := range items {
		if _, present := existing[item.Name]; present {
			continue
		}
		itemID, err := r.ids.NewID()
		if err != nil {
			r.logError(opApplyPackingTemplate, "id_generation_failed", err)
			return added, newRepositoryError(opApplyPackingTemplate, "id_generation_failed", err)
		}
		trip.Packing = append(trip.Packing, PackingItem{
			ID:       itemID,
			Name:     item.Name,
			Category: item.Category,
			Checked:  false,
		})
		existing[item.Name] = struct{}{}
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := r.persist(ctx, opApplyPackingTemplate); err != nil {
		return 0, err
	}
	return added, nil
}

// ExpenseParams describes the inputs of AddExpense.
type ExpenseParams struct {
	Title    string
	Amount   int
	Category string
	Payer    string
	Date     string
}

// AddExpense appends an expense. Amounts are whole currency units and must
// not be negative.
func (r *Repository) AddExpense(ctx context.Context, tripID string, params ExpenseParams) (Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return Expense{}, ErrEmptyExpenseTitle
	}
	if params.Amount < 0 {
		return Expense{}, ErrNegativeAmount
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddExpense, tripID)
		return Expense{}, nil
	}

	expenseID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddExpense, "id_generation_failed", err)
		return Expense{}, newRepositoryError(opAddExpense, "id_generation_failed", err)
	}

	expense := Expense{
		ID:       expenseID,
		Title:    title,
		Amount:   params.Amount,
		Category: params.Category,
		Payer:    strings.TrimSpace(params.Payer),
		Date:     params.Date,
	}
	trip.Expenses = append(trip.Expenses, expense)
	if err := r.persist(ctx, opAddExpense); err != nil {
		return Expense{}, err
	}
	return expense, nil
}

// ExpenseUpdate carries the fields EditExpense should replace.
type ExpenseUpdate struct {
	Title    *string
	Amount   *int
	Category *string
	Payer    *string
	Date     *string
}

// EditExpense replaces the provided fields on an expense.
func (r *Repository) EditExpense(ctx context.Context, tripID, expenseID string, update ExpenseUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditExpense, tripID)
		return nil
	}
	for i := range trip.Expenses {
		if trip.Expenses[i].ID != expenseID {
			continue
		}
		// Validate both constrained fields before touching the record so
		// a rejection leaves the expense untouched.
		title, amount := trip.Expenses[i].Title, trip.Expenses[i].Amount
		if update.Title != nil {
			trimmed := strings.TrimSpace(*update.Title)
			if trimmed == "" {
				return ErrEmptyExpenseTitle
			}
			title = trimmed
		}
		if update.Amount != nil {
			if *update.Amount < 0 {
				return ErrNegativeAmount
			}
			amount = *update.Amount
		}
		trip.Expenses[i].Title = title
		trip.Expenses[i].Amount = amount
		if update.Category != nil {
			trip.Expenses[i].Category = *update.Category
		}
		if update.Payer != nil {
			trip.Expenses[i].Payer = strings.TrimSpace(*update.Payer)
		}
		if update.Date != nil {
			trip.Expenses[i].Date = *update.Date
		}
		return r.persist(ctx, opEditExpense)
	}
	r.logMiss(opEditExpense, expenseID)
	return nil
}

// DeleteExpense removes an expense by id.
func (r *Repository) DeleteExpense(ctx context.Context, tripID, expenseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteExpense, tripID)
		return nil
	}
	kept, found := trip.Expenses[:0], false
	for _, expense := range trip.Expenses {
		if expense.ID == expenseID {
			found = true
			continue
		}
		kept = append(kept, expense)
	}
	if !found {
		r.logMiss(opDeleteExpense, expenseID)
		return nil
	}
	trip.Expenses = kept
	return r.persist(ctx, opDeleteExpense)
}

// AddPoll creates a poll from a question and newline-separated option text.
// Blank option lines are dropped; an empty question or option list rejects
// the operation with no poll created.
func (r *Repository) AddPoll(ctx context.Context, tripID, question, optionsText string) (Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmedQuestion := strings.TrimSpace(question)
	if trimmedQuestion == "" {
		return Poll{}, ErrEmptyPollQuestion
	}
	options := make([]PollOption, 0)
	for _, line := range strings.Split(optionsText, "\n") {
		text := strings.TrimSpace(line)
		if text != "" {
			options = append(options, PollOption{Text: text, Votes: 0})
		}
	}
	if len(options) == 0 {
		return Poll{}, ErrEmptyPollOptions
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddPoll, tripID)
		return Poll{}, nil
	}

	pollID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddPoll, "id_generation_failed", err)
		return Poll{}, newRepositoryError(opAddPoll, "id_generation_failed", err)
	}

	poll := Poll{ID: pollID, Question: trimmedQuestion, Options: options}
	trip.Polls = append(trip.Polls, poll)
	if err := r.persist(ctx, opAddPoll); err != nil {
		return Poll{}, err
	}
	return poll, nil
}

// Vote increments one option's vote count by exactly one. Unknown poll ids
// and out-of-range option indexes are silent no-ops.
func (r *Repository) Vote(ctx context.Context, tripID, pollID string, optionIndex int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opVote, tripID)
		return nil
	}
	for i := range trip.Polls {
		if trip.Polls[i].ID != pollID {
			continue
		}
		if optionIndex < 0 || optionIndex >= len(trip.Polls[i].Options) {
			r.logMiss(opVote, pollID)
			return nil
		}
		trip.Polls[i].Options[optionIndex].Votes++
		return r.persist(ctx, opVote)
	}
	r.logMiss(opVote, pollID)
	return nil
}

// PollUpdate carries the fields EditPoll should replace. Options are not
// editable after creation; reshaping them would invalidate recorded votes.
type PollUpdate struct {
	Question *string
}

// EditPoll replaces the provided fields on a poll.
func (r *Repository) EditPoll(ctx context.Context, tripID, pollID string, update PollUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditPoll, tripID)
		return nil
	}
	for i := range trip.Polls {
		if trip.Polls[i].ID != pollID {
			continue
		}
		if update.Question != nil {
			trimmed := strings.TrimSpace(*update.Question)
			if trimmed == "" {
				return ErrEmptyPollQuestion
			}
			trip.Polls[i].Question = trimmed
		}
		return r.persist(ctx, opEditPoll)
	}
	r.logMiss(opEditPoll, pollID)
	return nil
}

// DeletePoll removes a poll by id.
func (r *Repository) DeletePoll(ctx context.Context, tripID, pollID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeletePoll, tripID)
		return nil
	}
	kept, found := trip.Polls[:0], false
	for _, poll := range trip.Polls {
		if poll.ID == pollID {
			found = true
			continue
		}
		kept = append(kept, poll)
	}
	if !found {
		r.logMiss(opDeletePoll, pollID)
		return nil
	}
	trip.Polls = kept
	return r.persist(ctx, opDeletePoll)
}

// AddReminder appends a reminder.
func (r *Repository) AddReminder(ctx context.Context, tripID, text, date string) (Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Reminder{}, ErrEmptyReminderText
	}
	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opAddReminder, tripID)
		return Reminder{}, nil
	}

	reminderID, err := r.ids.NewID()
	if err != nil {
		r.logError(opAddReminder, "id_generation_failed", err)
		return Reminder{}, newRepositoryError(opAddReminder, "id_generation_failed", err)
	}

	reminder := Reminder{ID: reminderID, Text: trimmed, Date: date}
	trip.Reminders = append(trip.Reminders, reminder)
	if err := r.persist(ctx, opAddReminder); err != nil {
		return Reminder{}, err
	}
	return reminder, nil
}

// ReminderUpdate carries the fields EditReminder should replace.
type ReminderUpdate struct {
	Text *string
	Date *string
}

// EditReminder replaces the provided fields on a reminder.
func (r *Repository) EditReminder(ctx context.Context, tripID, reminderID string, update ReminderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opEditReminder, tripID)
		return nil
	}
	for i := range trip.Reminders {
		if trip.Reminders[i].ID != reminderID {
			continue
		}
		if update.Text != nil {
			trimmed := strings.TrimSpace(*update.Text)
			if trimmed == "" {
				return ErrEmptyReminderText
			}
			trip.Reminders[i].Text = trimmed
		}
		if update.Date != nil {
			trip.Reminders[i].Date = *update.Date
		}
		return r.persist(ctx, opEditReminder)
	}
	r.logMiss(opEditReminder, reminderID)
	return nil
}

// DeleteReminder removes a reminder by id.
func (r *Repository) DeleteReminder(ctx context.Context, tripID, reminderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip := r.findTrip(tripID)
	if trip == nil {
		r.logMiss(opDeleteReminder, tripID)
		return nil
	}
	kept, found := trip.Reminders[:0], false
	for _, reminder := range trip.Reminders {
		if reminder.ID == reminderID {
			found = true
			continue
		}
		kept = append(kept, reminder)
	}
	if !found {
		r.logMiss(opDeleteReminder, reminderID)
		return nil
	}
	trip.Reminders = kept
	return r.persist(ctx, opDeleteReminder)
}
