package model

import (
	"time"

	"advent-creator/internal/advent"
)

type SaveDayRequest struct {
	DayNumber   int            `json:"dayNumber" binding:"required"`
	PositionX   float64        `json:"positionX"`
	PositionY   float64        `json:"positionY"`
	ContentType string         `json:"contentType"`
	Content     advent.Content `json:"content"`
	Style       *string        `json:"style"`
	BgColor     *string        `json:"backgroundColor"`
	TextColor   *string        `json:"textColor"`
	Size        *float64       `json:"size"`
	FontSize    *float64       `json:"fontSize"`
}

type VerifyRequest struct {
	Password string `json:"password"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}

// PublicCalendar is the viewer-facing projection. The stored password never
// leaves the server; viewers only learn whether one is set.
type PublicCalendar struct {
	ID            int         `json:"id"`
	Slug          string      `json:"slug"`
	Name          string      `json:"name"`
	BackgroundURL string      `json:"backgroundUrl"`
	HasPassword   bool        `json:"hasPassword"`
	IsTest        bool        `json:"isTest"`
	// Locked is set when the payload was served without a viewer token and
	// the days were withheld.
	Locked bool        `json:"locked,omitempty"`
	Days   []PublicDay `json:"days"`
}

// PublicDay carries the tile along with its evaluated unlock state and
// resolved presentation for the request date.
type PublicDay struct {
	ID           int                 `json:"id"`
	DayNumber    int                 `json:"dayNumber"`
	PositionX    float64             `json:"positionX"`
	PositionY    float64             `json:"positionY"`
	ContentType  string              `json:"contentType"`
	CanOpen      bool                `json:"canOpen"`
	Presentation advent.Presentation `json:"presentation"`
	// Content is only populated for openable days.
	Content *advent.Content `json:"content,omitempty"`
}

// NewPublicCalendar projects a calendar for viewers, evaluating the unlock
// policy and style resolution per day against now. Pure: no database access,
// no clock access.
func NewPublicCalendar(c *Calendar, now time.Time) *PublicCalendar {
	pub := &PublicCalendar{
		ID:            c.ID,
		Slug:          c.Slug,
		Name:          c.Name,
		BackgroundURL: c.BackgroundURL,
		HasPassword:   c.HasPassword(),
		IsTest:        c.IsTest,
		Days:          make([]PublicDay, 0, len(c.Days)),
	}
	defaults := c.StyleDefaults()
	for i := range c.Days {
		d := &c.Days[i]
		canOpen := advent.CanOpen(d.DayNumber, c.IsTest, now)
		pd := PublicDay{
			ID:           d.ID,
			DayNumber:    d.DayNumber,
			PositionX:    d.PositionX,
			PositionY:    d.PositionY,
			ContentType:  d.ContentType,
			CanOpen:      canOpen,
			Presentation: advent.Present(advent.Resolve(d.StyleOverrides(), defaults), canOpen),
		}
		if canOpen {
			content := d.ParsedContent()
			pd.Content = &content
		}
		pub.Days = append(pub.Days, pd)
	}
	return pub
}
