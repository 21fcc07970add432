package notes

import (
	"encoding/json"
	"log"
	"net/http"

	"pharmadesk/db"
	"pharmadesk/globals"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var defaultCategories = []models.NoteCategory{
	{Name: "General", Color: "#6B7280"},
	{Name: "Important", Color: "#EF4444"},
	{Name: "Ideas", Color: "#F59E0B"},
	{Name: "To-Do", Color: "#3B82F6"},
	{Name: "Meeting", Color: "#8B5CF6"},
	{Name: "Personal", Color: "#10B981"},
	{Name: "Work", Color: "#0EA5E9"},
}

func requestingUser(r *http.Request) string {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	return userID
}

// GetNotes lists notes with ?category=, ?search= and ?sort= (updated,
// created or title). Pinned notes sort first in every mode.
func GetNotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var notes []models.Note
	if err := store.List(r.Context(), db.NotesCollection, "createdAt", &notes); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load notes", err)
		return
	}

	query := r.URL.Query()
	notes = FilterNotes(notes, query.Get("category"), query.Get("search"))
	SortNotes(notes, query.Get("sort"))
	utils.SendJSONResponse(w, http.StatusOK, notes)
}

func GetNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var note models.Note
	err := store.Get(r.Context(), db.NotesCollection, ps.ByName("noteid"), &note)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load note", err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, note)
}

func CreateNote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.NotesCollection, note, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error saving note", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Note added successfully", nil)
}

func EditNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := note.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.NotesCollection, ps.ByName("noteid"), bson.M{
		"title":      note.Title,
		"content":    note.Content,
		"categoryId": note.CategoryID,
		"tags":       note.Tags,
		"priority":   note.Priority,
		"isPinned":   note.IsPinned,
		"isPublic":   note.IsPublic,
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating note", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Note updated successfully", nil)
}

// TogglePin flips a note's pinned flag.
func TogglePin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	noteID := ps.ByName("noteid")

	var note models.Note
	err := store.Get(r.Context(), db.NotesCollection, noteID, &note)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load note", err)
		return
	}

	if err := store.Update(r.Context(), db.NotesCollection, noteID, bson.M{"isPinned": !note.IsPinned}); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating note", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, map[string]bool{"isPinned": !note.IsPinned}, "Note updated successfully", nil)
}

func DeleteNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.NotesCollection, ps.ByName("noteid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting note", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Note deleted successfully", nil)
}

// GetCategories lists note categories, seeding the defaults on an empty
// collection.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var categories []models.NoteCategory
	if err := store.List(ctx, db.NoteCategoriesCollection, "name", &categories); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load categories", err)
		return
	}

	if len(categories) == 0 {
		for _, cat := range defaultCategories {
			if _, err := store.Create(ctx, db.NoteCategoriesCollection, cat, requestingUser(r)); err != nil {
				log.Printf("Failed to seed note category %s: %v", cat.Name, err)
			}
		}
		if err := store.List(ctx, db.NoteCategoriesCollection, "name", &categories); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load categories", err)
			return
		}
	}

	utils.SendJSONResponse(w, http.StatusOK, categories)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var cat models.NoteCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil || cat.Name == "" {
		http.Error(w, "Category name is required", http.StatusBadRequest)
		return
	}

	id, err := store.Create(r.Context(), db.NoteCategoriesCollection, cat, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error saving category", err)
		return
	}
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Category added successfully", nil)
}

// DeleteCategory refuses while any note still references the category.
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	var referencing []models.Note
	if err := store.Query(r.Context(), db.NotesCollection, "categoryId", categoryID, &referencing); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting category", err)
		return
	}
	if len(referencing) > 0 {
		http.Error(w, "Cannot delete category with existing notes", http.StatusConflict)
		return
	}

	err := store.Delete(r.Context(), db.NoteCategoriesCollection, categoryID)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting category", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Category deleted successfully", nil)
}
