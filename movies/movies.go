package movies

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetMovies(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var movies []models.Movie
	if err := store.List(r.Context(), db.MoviesCollection, "name", &movies); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load movies", err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	utils.SendJSONResponse(w, http.StatusOK, movies)
}

func GetMovie(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var movie models.Movie
	err := store.Get(r.Context(), db.MoviesCollection, ps.ByName("movieid"), &movie)
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load movie", err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, movie)
}

func CreateMovie(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	movie.UpdatedAt = time.Now().Format(time.RFC3339)
	id, err := store.Create(r.Context(), db.MoviesCollection, movie, movie.UploadedBy)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, nil, "Error adding movie", err)
		return
	}

	log.Printf("Movie added: %s (%s)", movie.Name, id)
	utils.SendResponse(w, http.StatusCreated, map[string]string{"id": id}, "Movie added successfully", nil)
}

func EditMovie(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var movie models.Movie
	if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := movie.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := store.Update(r.Context(), db.MoviesCollection, ps.ByName("movieid"), bson.M{
		"name":         movie.Name,
		"year":         movie.Year,
		"language":     movie.Language,
		"views":        movie.Views,
		"duration":     movie.Duration,
		"m3u8_url":     movie.M3U8URL,
		"cover_url":    movie.CoverURL,
		"uploaded_by":  movie.UploadedBy,
		"last_updated": time.Now().Format(time.RFC3339),
	})
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error updating movie", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Movie updated successfully", nil)
}

func DeleteMovie(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	err := store.Delete(r.Context(), db.MoviesCollection, ps.ByName("movieid"))
	if err == mongo.ErrNoDocuments {
		http.Error(w, "Movie not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error deleting movie", err)
		return
	}
	utils.SendResponse(w, http.StatusOK, nil, "Movie deleted successfully", nil)
}
