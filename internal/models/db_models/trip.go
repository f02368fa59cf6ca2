package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Trip is one saved itinerary. Owned by exactly one account, immutable after
// creation except for deletion.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Destination string
	Days        int
	Interest    string
	Plan        pq.StringArray `gorm:"type:text[]"`
}
