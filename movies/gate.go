package movies

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pharmadesk/db"
	"pharmadesk/rdx"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The movie panel sits behind a shared password rather than user accounts.
// A correct password buys a short-lived gate token held in Redis.

const (
	adminPasswordID = "admin_password"
	defaultPassword = "admin123"
	gateTTL         = 12 * time.Hour
)

func gateKey(token string) string {
	return "movie_gate:" + token
}

// ensurePassword seeds the default admin password on first use.
func ensurePassword(ctx context.Context) (string, error) {
	var doc struct {
		Password string `bson:"password"`
	}
	err := db.AdminCollection.FindOne(ctx, bson.M{"id": adminPasswordID}).Decode(&doc)
	if err == nil {
		return doc.Password, nil
	}
	if err != mongo.ErrNoDocuments {
		return "", err
	}

	_, err = db.AdminCollection.InsertOne(ctx, bson.M{
		"id":       adminPasswordID,
		"password": defaultPassword,
	})
	if err != nil {
		return "", err
	}
	log.Println("Default movie admin password set")
	return defaultPassword, nil
}

// CheckGate verifies the password and issues a gate token.
func CheckGate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Password == "" {
		http.Error(w, "Please enter password", http.StatusBadRequest)
		return
	}

	stored, err := ensurePassword(r.Context())
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error checking password", err)
		return
	}

	if input.Password != stored {
		http.Error(w, "Incorrect password", http.StatusUnauthorized)
		return
	}

	token := utils.GenerateRandomString(24)
	if err := rdx.SetWithExpiry(gateKey(token), "1", gateTTL); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error creating session", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"gateToken": token}, "Password accepted", nil)
}

// CloseGate drops the caller's gate token.
func CloseGate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := r.Header.Get("X-Gate-Token")
	if token != "" {
		if _, err := rdx.RdxDel(gateKey(token)); err != nil {
			log.Printf("Error removing gate token: %v", err)
		}
	}
	utils.SendResponse(w, http.StatusOK, nil, "Logged out", nil)
}

// ChangePassword rotates the shared admin password.
func ChangePassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		CurrentPassword    string `json:"currentPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmNewPassword == "" {
		http.Error(w, "Please fill all fields", http.StatusBadRequest)
		return
	}
	if len(input.NewPassword) < 6 {
		http.Error(w, "New password must be at least 6 characters", http.StatusBadRequest)
		return
	}
	if input.NewPassword != input.ConfirmNewPassword {
		http.Error(w, "New passwords do not match", http.StatusBadRequest)
		return
	}

	stored, err := ensurePassword(r.Context())
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error checking password", err)
		return
	}
	if input.CurrentPassword != stored {
		http.Error(w, "Current password is incorrect", http.StatusUnauthorized)
		return
	}

	err = store.Update(r.Context(), db.AdminCollection, adminPasswordID, bson.M{"password": input.NewPassword})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error changing password", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Password changed successfully", nil)
}

// Gated rejects movie mutations without a live gate token.
func Gated(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := r.Header.Get("X-Gate-Token")
		if token == "" {
			http.Error(w, "Missing gate token", http.StatusUnauthorized)
			return
		}
		if _, err := rdx.RdxGet(gateKey(token)); err != nil {
			http.Error(w, "Gate session expired", http.StatusUnauthorized)
			return
		}
		next(w, r, ps)
	}
}
