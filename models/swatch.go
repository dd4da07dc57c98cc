package models

import (
	"time"

	"github.com/color-game/swatchbook/notation"
)

// MaxSwatchesPerUser caps how many swatches a single user may keep
const MaxSwatchesPerUser = 200

// Swatch is a named color saved by a user, along with the text it was parsed from
type Swatch struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Red       float64   `json:"red"`
	Green     float64   `json:"green"`
	Blue      float64   `json:"blue"`
	Alpha     float64   `json:"alpha"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSwatch(userID, name, source string, c notation.Color) Swatch {
	return Swatch{
		UserID:    userID,
		Name:      name,
		Source:    source,
		Red:       c.Red,
		Green:     c.Green,
		Blue:      c.Blue,
		Alpha:     c.Alpha,
		CreatedAt: time.Now(),
	}
}

func (s Swatch) Color() notation.Color {
	return notation.New(s.Red, s.Green, s.Blue, s.Alpha)
}

// SwatchCreateRequest is the body of POST /v1/swatches/create
type SwatchCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SwatchDeleteRequest is the body of POST /v1/swatches/delete
type SwatchDeleteRequest struct {
	ID int `json:"id"`
}

// SwatchResponse renders a swatch in the owner's preferred notation plus every other one
type SwatchResponse struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	Rendered  string         `json:"rendered"`
	Notations ColorNotations `json:"notations"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewSwatchResponse(s Swatch, preferred notation.Format) SwatchResponse {
	rendered, err := notation.Render(s.Color(), preferred, false)
	if err != nil {
		rendered = notation.CSSString(s.Color())
	}
	return SwatchResponse{
		ID:        s.ID,
		Name:      s.Name,
		Source:    s.Source,
		Rendered:  rendered,
		Notations: NewColorNotations(s.Color(), false),
		CreatedAt: s.CreatedAt,
	}
}
