package utils

import (
	"math"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateSessionToken creates a fresh bearer token for a login session
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// DurationDays returns the billed number of days between two timestamps.
// Partial days count as a full day.
func DurationDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
