package model

// Settings is the singleton application settings record. Updates are
// shallow merges over the current value.
type Settings struct {
	IsOnboarded            bool              `json:"isOnboarded"`
	UserName               string            `json:"userName,omitempty"`
	Currency               string            `json:"currency"`
	CurrencySymbol         string            `json:"currencySymbol"`
	ThemeColor             string            `json:"themeColor"`
	SecurityPIN            string            `json:"securityPin,omitempty"`
	IsDemoMode             bool              `json:"isDemoMode,omitempty"`
	BackgroundImage        string            `json:"backgroundImage,omitempty"`
	AutoThemeFromWallpaper bool              `json:"autoThemeFromWallpaper,omitempty"`
	CustomThemeHex         string            `json:"customThemeHex,omitempty"`
	BackgroundBlur         int               `json:"backgroundBlur,omitempty"`
	WallpaperBlur          int               `json:"wallpaperBlur,omitempty"`
	CardStyle              string            `json:"cardStyle"`
	EnableAnimations       bool              `json:"enableAnimations,omitempty"`
	PrivacyMode            bool              `json:"privacyMode,omitempty"`
	MerchantMap            map[string]string `json:"merchantMap,omitempty"`
	SpentXP                int               `json:"spentXP"`
}

// DefaultSettings is the record created at first run.
func DefaultSettings() Settings {
	return Settings{
		Currency:               "DZD",
		CurrencySymbol:         "د.ج",
		ThemeColor:             "bronze",
		CustomThemeHex:         "#8C6A4B",
		CardStyle:              "glass",
		EnableAnimations:       true,
		AutoThemeFromWallpaper: true,
		BackgroundBlur:         16,
		SecurityPIN:            "1234",
		MerchantMap:            map[string]string{},
	}
}
