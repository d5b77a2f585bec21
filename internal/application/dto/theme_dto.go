package dto

import "time"

// CreateThemeRequest creates a UI theme.
type CreateThemeRequest struct {
	Name            string `json:"name"`
	Mode            string `json:"mode,omitempty"` // LIGHT or DARK
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
}

// UpdateThemeRequest is the partial update payload; presence = replace.
type UpdateThemeRequest struct {
	Name            *string `json:"name,omitempty"`
	Mode            *string `json:"mode,omitempty"`
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	SecondaryColor  *string `json:"secondaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
}

// ThemeResponse mirrors a persisted theme.
type ThemeResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Mode            string    `json:"mode"`
	PrimaryColor    string    `json:"primaryColor,omitempty"`
	SecondaryColor  string    `json:"secondaryColor,omitempty"`
	AccentColor     string    `json:"accentColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	TextColor       string    `json:"textColor,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
