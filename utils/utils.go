package utils

import (
	"fmt"
	rndm "math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateID creates a short record identifier of length n.
func GenerateID(n int) string {
	return GenerateRandomString(n)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Formatting ---

// FormatCurrency renders an amount in BDT, the shop's currency.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("৳ %.2f", amount)
}

// DateString returns t as YYYY-MM-DD, the date format stored on records.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthString returns t as YYYY-MM.
func MonthString(t time.Time) string {
	return t.Format("2006-01")
}

// --- Slice Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
