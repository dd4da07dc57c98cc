package models

import (
	"time"

	"github.com/color-game/swatchbook/notation"
)

// DailyColor represents the color of the day
type DailyColor struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	ColorName string    `json:"color_name"`
	Red       float64   `json:"red"`
	Green     float64   `json:"green"`
	Blue      float64   `json:"blue"`
	Alpha     float64   `json:"alpha"`
	CreatedAt time.Time `json:"created_at"`
}

func (dc DailyColor) Color() notation.Color {
	return notation.New(dc.Red, dc.Green, dc.Blue, dc.Alpha)
}

// DailyColorDeleteRequest is the body of POST /v1/admin/colors/delete
type DailyColorDeleteRequest struct {
	ID int `json:"id"`
}

// DailyColorResponse is the simplified response for API endpoints
type DailyColorResponse struct {
	Date      string         `json:"date"`
	ColorName string         `json:"color_name"`
	Notations ColorNotations `json:"notations"`
}

func NewDailyColorResponse(dc DailyColor) DailyColorResponse {
	return DailyColorResponse{
		Date:      dc.Date.Format("2006-01-02"),
		ColorName: dc.ColorName,
		Notations: NewColorNotations(dc.Color(), false),
	}
}
