package domain

import "time"

// CurrentTimeProvider abstracts the clock so use cases can be tested with
// fixed timestamps.
type CurrentTimeProvider interface {
	Now() time.Time
}
