package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/globals"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func requestingUser(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

// GetEvents lists events, optionally filtered by ?month= or ?date=.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var events []models.CalendarEvent
	if err := store.List(r.Context(), db.CalendarEventsCollection, "date", &events); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load events", err)
		return
	}

	month := r.URL.Query().Get("month")
	date := r.URL.Query().Get("date")
	filtered := make([]models.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if month != "" && !InMonth(ev.Date, month) {
			continue
		}
		if date != "" && ev.Date != date {
			continue
		}
		filtered = append(filtered, ev)
	}
	utils.SendJSONResponse(w, http.StatusOK, filtered)
}

func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var ev models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.CalendarEventsCollection, ev, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error saving event", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Event added successfully", nil)
}

func EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var ev models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := ev.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.CalendarEventsCollection, ps.ByName("eventid"), bson.M{
		"title":        ev.Title,
		"date":         ev.Date,
		"time":         ev.Time,
		"eventType":    ev.EventType,
		"priority":     ev.Priority,
		"description":  ev.Description,
		"isAllDay":     ev.IsAllDay,
		"sendReminder": ev.SendReminder,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating event", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Event updated successfully", nil)
}

func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.CalendarEventsCollection, ps.ByName("eventid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting event", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Event deleted successfully", nil)
}

// GetReminders lists reminders ordered by date.
func GetReminders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reminders []models.Reminder
	if err := store.List(r.Context(), db.RemindersCollection, "date", &reminders); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load reminders", err)
		return
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	utils.SendJSONResponse(w, http.StatusOK, reminders)
}

func CreateReminder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rem models.Reminder
	if err := json.NewDecoder(r.Body).Decode(&rem); err != nil || rem.Title == "" || rem.Date == "" {
		http.Error(w, "Reminder title and date are required", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.RemindersCollection, rem, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error saving reminder", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Reminder added successfully", nil)
}

func DeleteReminder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.RemindersCollection, ps.ByName("reminderid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Reminder not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting reminder", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Reminder deleted successfully", nil)
}

// GetMonth renders the month grid with per-day activity and totals.
// ?month=YYYY-MM, defaulting to the current month.
func GetMonth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = utils.MonthString(time.Now())
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		http.Error(w, "Invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	var events []models.CalendarEvent
	var reminders []models.Reminder
	var sales []models.Sale
	var expenses []models.Expense
	if err := store.List(ctx, db.CalendarEventsCollection, "date", &events); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load calendar", err)
		return
	}
	if err := store.List(ctx, db.RemindersCollection, "date", &reminders); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load calendar", err)
		return
	}
	if err := store.List(ctx, db.SalesCollection, "date", &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load calendar", err)
		return
	}
	if err := store.List(ctx, db.ExpensesCollection, "date", &expenses); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load calendar", err)
		return
	}

	cells := BuildMonth(month, events, reminders, sales, expenses)
	utils.SendJSONResponse(w, http.StatusOK, map[string]any{
		"month":   month,
		"days":    cells,
		"summary": Summarize(month, cells),
	})
}

// GetDay returns everything that happened on one date.
func GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := ps.ByName("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	var events []models.CalendarEvent
	var reminders []models.Reminder
	var sales []models.Sale
	var expenses []models.Expense
	if err := store.Query(ctx, db.CalendarEventsCollection, "date", date, &events); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load day", err)
		return
	}
	if err := store.Query(ctx, db.RemindersCollection, "date", date, &reminders); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load day", err)
		return
	}
	if err := store.Query(ctx, db.SalesCollection, "date", date, &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load day", err)
		return
	}
	if err := store.Query(ctx, db.ExpensesCollection, "date", date, &expenses); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load day", err)
		return
	}

	var salesTotal, expenseTotal float64
	for _, sale := range sales {
		salesTotal += sale.TotalAmount
	}
	for _, exp := range expenses {
		expenseTotal += exp.Amount
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]any{
		"date":         date,
		"events":       events,
		"reminders":    reminders,
		"sales":        sales,
		"expenses":     expenses,
		"salesTotal":   salesTotal,
		"expenseTotal": expenseTotal,
		"profit":       salesTotal - expenseTotal,
	})
}
