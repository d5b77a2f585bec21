package entity

import "time"

// Theme display modes.
const (
	ThemeModeLight = "LIGHT"
	ThemeModeDark  = "DARK"
)

// Theme is a UI color scheme owned by a user. At most one theme per owner
// is active.
type Theme struct {
	ID              string
	UserID          string
	Name            string
	Mode            string
	PrimaryColor    string
	SecondaryColor  string
	AccentColor     string
	BackgroundColor string
	TextColor       string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
