package models

// Storage keys for terminal settings. The values are kept as strings so a
// browser shell can share the same key space it used with local storage.
const (
	KeyTheme                = "theme"
	KeyTippingEnabled       = "tippingEnabled"
	KeyOrderOptionEnabled   = "orderOptionEnabled"
	KeyCatalogOptionEnabled = "catalogOptionEnabled"
	KeyMemoEnabled          = "memoEnabled"
	KeyScanOptionEnabled    = "scanOptionEnabled"
	KeySelectedSite         = "selectedSite"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the typed view over the terminal's key/value settings.
type Settings struct {
	Theme                string `json:"theme"`
	TippingEnabled       bool   `json:"tippingEnabled"`
	OrderOptionEnabled   bool   `json:"orderOptionEnabled"`
	CatalogOptionEnabled bool   `json:"catalogOptionEnabled"`
	MemoEnabled          bool   `json:"memoEnabled"`
	ScanOptionEnabled    bool   `json:"scanOptionEnabled"`
	SelectedSite         string `json:"selectedSite"`
}

// DefaultSettings is what a fresh terminal starts with.
func DefaultSettings() Settings {
	return Settings{
		Theme:                ThemeLight,
		TippingEnabled:       true,
		OrderOptionEnabled:   true,
		CatalogOptionEnabled: true,
		MemoEnabled:          true,
		ScanOptionEnabled:    true,
	}
}

// SettingsPatch carries a partial update; nil fields are left untouched.
type SettingsPatch struct {
	Theme                *string `json:"theme,omitempty"`
	TippingEnabled       *bool   `json:"tippingEnabled,omitempty"`
	OrderOptionEnabled   *bool   `json:"orderOptionEnabled,omitempty"`
	CatalogOptionEnabled *bool   `json:"catalogOptionEnabled,omitempty"`
	MemoEnabled          *bool   `json:"memoEnabled,omitempty"`
	ScanOptionEnabled    *bool   `json:"scanOptionEnabled,omitempty"`
	SelectedSite         *string `json:"selectedSite,omitempty"`
}
