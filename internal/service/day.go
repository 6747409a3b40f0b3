package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"advent-creator/internal/advent"
	"advent-creator/internal/model"
)

type DayService struct{ db *gorm.DB }

func NewDayService(db *gorm.DB) *DayService { return &DayService{db: db} }

// Save creates a day when id is zero, otherwise overwrites the existing
// record. Drag repositioning and the edit dialog both land here; concurrent
// edits are last-write-wins.
func (s *DayService) Save(ctx context.Context, calendarID, id int, req model.SaveDayRequest) (*model.Day, error) {
	contentType := req.ContentType
	if contentType == "" {
		contentType = advent.TypeText
	}
	if !advent.ValidType(contentType) {
		return nil, fmt.Errorf("invalid content type %q", contentType)
	}

	day := model.Day{
		ID:          id,
		CalendarID:  calendarID,
		DayNumber:   req.DayNumber,
		PositionX:   req.PositionX,
		PositionY:   req.PositionY,
		ContentType: contentType,
		Content:     advent.SerializeContent(req.Content),
		Style:       req.Style,
		BgColor:     req.BgColor,
		TextColor:   req.TextColor,
		Size:        req.Size,
		FontSize:    req.FontSize,
	}

	if id == 0 {
		if err := s.db.WithContext(ctx).Create(&day).Error; err != nil {
			return nil, fmt.Errorf("insert day: %w", err)
		}
		return &day, nil
	}

	res := s.db.WithContext(ctx).Model(&model.Day{}).
		Where("id = ? AND calendar_id = ?", id, calendarID).
		Updates(map[string]interface{}{
			"day_number":       day.DayNumber,
			"position_x":       day.PositionX,
			"position_y":       day.PositionY,
			"content_type":     day.ContentType,
			"content":          day.Content,
			"style":            day.Style,
			"background_color": day.BgColor,
			"text_color":       day.TextColor,
			"size":             day.Size,
			"font_size":        day.FontSize,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update day: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &day, nil
}

func (s *DayService) Delete(ctx context.Context, calendarID, id int) error {
	res := s.db.WithContext(ctx).Where("calendar_id = ?", calendarID).Delete(&model.Day{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete day: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
