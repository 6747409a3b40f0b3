package model

import (
	"time"

	"gorm.io/datatypes"

	"advent-creator/internal/advent"
)

type Calendar struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	Slug          string    `gorm:"uniqueIndex" json:"slug"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	BackgroundURL string    `json:"backgroundUrl"`
	IsPublished   bool      `json:"isPublished"`
	IsTest        bool      `json:"isTest"`
	DefaultStyle  string    `gorm:"default:circle" json:"defaultStyle"`
	DefaultColor  string    `gorm:"default:#dc2626" json:"defaultColor"`
	DefaultText   string    `gorm:"column:default_text_color;default:#ffffff" json:"defaultTextColor"`
	DefaultSize   float64   `gorm:"default:6.5" json:"defaultSize"`
	DefaultFont   float64   `gorm:"column:default_font_size;default:40" json:"defaultFontSize"`
	CreatedAt     time.Time `json:"createdAt"`
	Days          []Day     `json:"days,omitempty"`
}

type Day struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	CalendarID  int            `gorm:"index" json:"calendarId"`
	DayNumber   int            `json:"dayNumber"`
	PositionX   float64        `json:"positionX"`
	PositionY   float64        `json:"positionY"`
	ContentType string         `gorm:"default:text" json:"contentType"`
	Content     datatypes.JSON `json:"content"`
	Style       *string        `json:"style"`
	BgColor     *string        `gorm:"column:background_color" json:"backgroundColor"`
	TextColor   *string        `json:"textColor"`
	Size        *float64       `json:"size"`
	FontSize    *float64       `json:"fontSize"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Calendar) TableName() string { return "calendars" }
func (Day) TableName() string      { return "days" }

// HasPassword reports whether viewers must unlock this calendar.
func (c *Calendar) HasPassword() bool { return c.PasswordHash != "" }

// StyleDefaults maps the calendar's stored defaults into the rules engine.
func (c *Calendar) StyleDefaults() advent.Defaults {
	return advent.Defaults{
		Style:     c.DefaultStyle,
		Color:     c.DefaultColor,
		TextColor: c.DefaultText,
		Size:      c.DefaultSize,
		FontSize:  c.DefaultFont,
	}
}

// StyleOverrides maps the day's nullable per-tile values into the rules engine.
func (d *Day) StyleOverrides() advent.Overrides {
	return advent.Overrides{
		Style:           d.Style,
		BackgroundColor: d.BgColor,
		TextColor:       d.TextColor,
		Size:            d.Size,
		FontSize:        d.FontSize,
	}
}

// ParsedContent decodes the stored payload, tolerating empty and malformed
// blobs.
func (d *Day) ParsedContent() advent.Content {
	return advent.ParseContent(d.Content)
}
