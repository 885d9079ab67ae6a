package usecase

import (
	"fmt"
	"time"
)

// Contract dates and numbers follow Korean local time.
var kst = time.FixedZone("KST", 9*60*60)

func defaultClock() time.Time {
	return time.Now().In(kst)
}

// withCause keeps sentinel matchable with errors.Is and the cause in the message.
func withCause(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
