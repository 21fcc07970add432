package crm

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pharmadesk/db"
	"pharmadesk/models"
	"pharmadesk/mq"
	"pharmadesk/store"
	"pharmadesk/utils"

	"github.com/julienschmidt/httprouter"
)

// SendBulkSMS resolves the audience for a message and records an SMSLog.
// There is no gateway behind this; the log is the system of record.
func SendBulkSMS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Message       string `json:"message"`
		CustomerGroup string `json:"customerGroup"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(input.Message) == "" {
		http.Error(w, "Please enter a message", http.StatusBadRequest)
		return
	}
	if input.CustomerGroup == "" {
		input.CustomerGroup = "all"
	}

	ctx := r.Context()
	var customers []models.Customer
	if err := store.List(ctx, db.CustomersCollection, "name", &customers); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error sending SMS", err)
		return
	}
	var sales []models.Sale
	if err := store.List(ctx, db.SalesCollection, "", &sales); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error sending SMS", err)
		return
	}
	var credits []models.CreditSale
	if err := store.List(ctx, db.CreditSalesCollection, "", &credits); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error sending SMS", err)
		return
	}

	targets := SelectSMSGroup(input.CustomerGroup, customers, sales, credits, time.Now())
	if len(targets) == 0 {
		http.Error(w, "No customers found for selected group", http.StatusBadRequest)
		return
	}

	entry := models.SMSLog{
		Message:       input.Message,
		CustomerGroup: input.CustomerGroup,
		CustomerCount: len(targets),
		SentAt:        time.Now().Format(time.RFC3339),
		SentBy:        requestingUser(r),
	}
	id, err := store.Create(ctx, db.SMSLogsCollection, entry, requestingUser(r))
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Error logging SMS", err)
		return
	}

	mq.Emit("sms-sent", mq.Event{EntityID: id})

	recipients := make([]map[string]string, 0, len(targets))
	for _, c := range targets {
		recipients = append(recipients, map[string]string{"name": c.Name, "mobile": c.Mobile})
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"logId":         id,
		"customerCount": len(targets),
		"recipients":    recipients,
	}, "SMS sent successfully", nil)
}

func GetSMSLogs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var logs []models.SMSLog
	if err := store.List(r.Context(), db.SMSLogsCollection, "sentAt", &logs); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, nil, "Failed to load SMS logs", err)
		return
	}
	if logs == nil {
		logs = []models.SMSLog{}
	}
	utils.SendJSONResponse(w, http.StatusOK, logs)
}
