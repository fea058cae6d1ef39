package settings

import (
	"time"

	"github.com/google/uuid"
)

type SettingType string

const (
	TypeString  SettingType = "string"
	TypeNumber  SettingType = "number"
	TypeBoolean SettingType = "boolean"
	TypeJSON    SettingType = "json"
)

func (t SettingType) IsValid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeJSON:
		return true
	}
	return false
}

type Setting struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SettingKey   string      `gorm:"type:text;not null;uniqueIndex" json:"setting_key"`
	SettingValue string      `gorm:"type:text" json:"setting_value"`
	SettingType  SettingType `gorm:"type:text;not null;default:string" json:"setting_type"`
	Description  string      `gorm:"type:text" json:"description,omitempty"`
	UpdatedBy    *uuid.UUID  `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
