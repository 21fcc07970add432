package notes

import (
	"sort"
	"strings"

	"pharmadesk/models"
	"pharmadesk/utils"
)

// FilterNotes narrows notes by category and free-text search across
// title, content and tags.
func FilterNotes(notes []models.Note, categoryID, search string) []models.Note {
	filtered := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if categoryID != "" && note.CategoryID != categoryID {
			continue
		}
		if search != "" && !matches(note, search) {
			continue
		}
		filtered = append(filtered, note)
	}
	return filtered
}

func matches(note models.Note, search string) bool {
	if utils.ContainsIgnoreCase(note.Title, search) || utils.ContainsIgnoreCase(note.Content, search) {
		return true
	}
	for _, tag := range note.Tags {
		if utils.ContainsIgnoreCase(tag, search) {
			return true
		}
	}
	return false
}

// SortNotes orders notes by the requested mode. Pinned notes always come
// first, then the mode decides the order within each group.
func SortNotes(notes []models.Note, mode string) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}
		switch mode {
		case "created":
			return notes[i].CreatedAt > notes[j].CreatedAt
		case "title":
			return strings.ToLower(notes[i].Title) < strings.ToLower(notes[j].Title)
		default: // updated
			return lastTouched(notes[i]) > lastTouched(notes[j])
		}
	})
}

func lastTouched(note models.Note) string {
	if note.UpdatedAt != "" {
		return note.UpdatedAt
	}
	return note.CreatedAt
}
