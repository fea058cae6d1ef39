package activitylog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ActionType  string         `gorm:"type:text;not null" json:"action_type"`
	EntityType  string         `gorm:"type:text;not null;index:idx_activity_entity" json:"entity_type"`
	EntityID    *uuid.UUID     `gorm:"type:uuid;index:idx_activity_entity" json:"entity_id,omitempty"`
	NewValue    datatypes.JSON `gorm:"type:jsonb" json:"new_value,omitempty"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// Entry is what callers hand to the recorder; the user and timestamp come
// from the request context.
type Entry struct {
	ActionType  string
	EntityType  string
	EntityID    *uuid.UUID
	NewValue    interface{}
	Description string
}
