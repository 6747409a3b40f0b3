package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"advent-creator/internal/logger"
	"advent-creator/internal/model"
	"advent-creator/internal/service"
)

type DayHandler struct {
	svc *service.DayService
}

func NewDayHandler(svc *service.DayService) *DayHandler { return &DayHandler{svc: svc} }

// POST /api/calendars/:id/days
func (h *DayHandler) Create(c *gin.Context) { h.save(c, 0) }

// PUT /api/calendars/:id/days/:dayId
func (h *DayHandler) Update(c *gin.Context) {
	dayID, err := strconv.Atoi(c.Param("dayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day id"})
		return
	}
	h.save(c, dayID)
}

func (h *DayHandler) save(c *gin.Context, dayID int) {
	calendarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar id"})
		return
	}
	var req model.SaveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	day, err := h.svc.Save(c.Request.Context(), calendarID, dayID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.Error("day.save failed", "calendar", calendarID, "day", dayID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save day"})
		return
	}
	c.JSON(http.StatusOK, day)
}

// DELETE /api/calendars/:id/days/:dayId
func (h *DayHandler) Delete(c *gin.Context) {
	calendarID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calendar id"})
		return
	}
	dayID, err := strconv.Atoi(c.Param("dayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), calendarID, dayID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
