package ports

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// Clock tells the core what time it is. Seeding and the due-date state policy
// are relative to Today.
type Clock interface {
	Now() time.Time
	Today() kernel.Date
}
