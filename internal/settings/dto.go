package settings

type SaveSettingDTO struct {
	SettingKey   string      `json:"setting_key" validate:"required"`
	SettingValue string      `json:"setting_value"`
	SettingType  SettingType `json:"setting_type" validate:"omitempty,oneof=string number boolean json"`
	Description  string      `json:"description"`
}
