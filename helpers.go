package taxii

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces message identifiers. It must be safe for concurrent use.
type IDGenerator func() string

// NewMessageID returns random message identifier.
func NewMessageID() string {
	return uuid.NewString()
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
