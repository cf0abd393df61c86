package model

type CompanyInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Address  string `json:"address"`
}

// Settings is a single process-wide record, created lazily with defaults on
// first read and overwritten as a whole on save.
type Settings struct {
	DefaultCurrency       Currency    `json:"defaultCurrency"`
	Timezone              string      `json:"timezone"`
	Company               CompanyInfo `json:"company"`
	EmailNotifications    bool        `json:"emailNotifications"`
	WhatsappNotifications bool        `json:"whatsappNotifications"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency:    CurrencyUSD,
		Timezone:           "America/Santo_Domingo",
		EmailNotifications: true,
	}
}
