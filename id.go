package analytics

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newEventID generates a statistically unique identifier for one event.
func newEventID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// Fall back to a timestamp-based ID if the random source fails.
		return fmt.Sprintf("%d-%x", time.Now().UnixNano(), time.Now().Unix())
	}
	return id.String()
}
