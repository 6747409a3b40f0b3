package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"advent-creator/internal/model"
)

type CalendarService struct{ db *gorm.DB }

func NewCalendarService(db *gorm.DB) *CalendarService { return &CalendarService{db: db} }

func (s *CalendarService) Create(ctx context.Context, name, slug, password, backgroundURL string) (*model.Calendar, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	cal := model.Calendar{
		Name:          name,
		Slug:          slug,
		PasswordHash:  hash,
		BackgroundURL: backgroundURL,
	}
	if err := s.db.WithContext(ctx).Create(&cal).Error; err != nil {
		return nil, fmt.Errorf("insert calendar: %w", err)
	}
	return &cal, nil
}

func (s *CalendarService) List(ctx context.Context) ([]model.Calendar, error) {
	var cals []model.Calendar
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&cals).Error; err != nil {
		return nil, fmt.Errorf("query calendars: %w", err)
	}
	return cals, nil
}

// Get looks a calendar up by numeric id or slug, with its days ordered by
// day number.
func (s *CalendarService) Get(ctx context.Context, idOrSlug string) (*model.Calendar, error) {
	q := s.db.WithContext(ctx).Preload("Days", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_number ASC")
	})
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("slug = ?", idOrSlug)
	}

	var cal model.Calendar
	if err := q.First(&cal).Error; err != nil {
		return nil, fmt.Errorf("query calendar: %w", err)
	}
	return &cal, nil
}

// UpdateParams are the settings-dialog fields. Nil password leaves the stored
// one alone; an empty string clears it.
type UpdateParams struct {
	Name          string
	Slug          string
	Password      *string
	IsPublished   bool
	IsTest        bool
	DefaultStyle  string
	DefaultColor  string
	DefaultText   string
	DefaultSize   float64
	DefaultFont   float64
	BackgroundURL *string
}

func (s *CalendarService) Update(ctx context.Context, id int, p UpdateParams) error {
	values := map[string]interface{}{
		"name":               p.Name,
		"slug":               p.Slug,
		"is_published":       p.IsPublished,
		"is_test":            p.IsTest,
		"default_style":      orString(p.DefaultStyle, "circle"),
		"default_color":      orString(p.DefaultColor, "#dc2626"),
		"default_text_color": orString(p.DefaultText, "#ffffff"),
		"default_size":       orFloat(p.DefaultSize, 6.5),
		"default_font_size":  orFloat(p.DefaultFont, 40),
	}
	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return err
		}
		values["password_hash"] = hash
	}
	if p.BackgroundURL != nil {
		values["background_url"] = *p.BackgroundURL
	}

	res := s.db.WithContext(ctx).Model(&model.Calendar{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("update calendar: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Public projects a published calendar for viewers, password masked and
// unlock state evaluated against now. Unpublished calendars are not found.
func (s *CalendarService) Public(ctx context.Context, slug string, now time.Time) (*model.PublicCalendar, error) {
	cal, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !cal.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return model.NewPublicCalendar(cal, now), nil
}

// CheckPassword compares an unlock attempt. A calendar without a password is
// always unlocked.
func (s *CalendarService) CheckPassword(ctx context.Context, id int, attempt string) (bool, error) {
	var cal model.Calendar
	if err := s.db.WithContext(ctx).First(&cal, id).Error; err != nil {
		return false, fmt.Errorf("query calendar: %w", err)
	}
	if !cal.HasPassword() {
		return true, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(cal.PasswordHash), []byte(attempt))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("compare password: %w", err)
	}
	return true, nil
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
