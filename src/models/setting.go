package models

type Setting struct {
	Base
	SettingKey   string `json:"settingKey"`
	Group        string `json:"group,omitempty"`
	SettingValue any    `json:"settingValue"`
}
