package model

type Settings struct {
	ID            int    `json:"id"`
	HeaderLogoURL string `json:"headerLogoUrl"`
	AppName       string `json:"appName"`
}

type SettingsUpdate struct {
	HeaderLogoURL string `json:"headerLogoUrl,omitempty" validate:"omitempty,max=255"`
	AppName       string `json:"appName,omitempty" validate:"omitempty,max=64"`
}
