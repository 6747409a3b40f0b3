package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"advent-creator/internal/advent"
	"advent-creator/internal/logger"
	"advent-creator/internal/middleware"
	"advent-creator/internal/model"
)

// PublicCalendarService is the slice of CalendarService the viewer routes
// need.
type PublicCalendarService interface {
	Public(ctx context.Context, slug string, now time.Time) (*model.PublicCalendar, error)
	CheckPassword(ctx context.Context, id int, attempt string) (bool, error)
}

type PublicHandler struct {
	svc    PublicCalendarService
	viewer *middleware.Viewer
	now    func() time.Time
}

func NewPublicHandler(svc PublicCalendarService, viewer *middleware.Viewer) *PublicHandler {
	return &PublicHandler{svc: svc, viewer: viewer, now: time.Now}
}

// GET /api/c/:slug — masked public payload. When the calendar has a password
// and the request carries no valid viewer token, the days are withheld so
// the lock screen can still render from the metadata.
func (h *PublicHandler) Get(c *gin.Context) {
	pub, err := h.svc.Public(c.Request.Context(), c.Param("slug"), h.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if pub.HasPassword && !h.viewer.Verify(middleware.FromRequest(c), pub.ID) {
		pub.Days = []model.PublicDay{}
		pub.Locked = true
	}
	c.JSON(http.StatusOK, pub)
}

// POST /api/c/:slug/verify — password attempt. Success returns a viewer
// token scoped to this calendar; a calendar without a password always
// verifies.
func (h *PublicHandler) Verify(c *gin.Context) {
	var req model.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pub, err := h.svc.Public(c.Request.Context(), c.Param("slug"), h.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.svc.CheckPassword(c.Request.Context(), pub.ID, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		logger.Warn("calendar.unlock failed", "slug", pub.Slug)
		c.JSON(http.StatusOK, model.VerifyResponse{Valid: false})
		return
	}

	token, err := h.viewer.Issue(pub.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.VerifyResponse{Valid: true, Token: token})
}

// GET /api/c/:slug/opened — the viewer's opened day ids for this calendar.
// Cookie-backed and purely advisory; it never gates content.
func (h *PublicHandler) Opened(c *gin.Context) {
	tr, ok := h.tracker(c)
	if !ok {
		return
	}
	ids := tr.Opened()
	if ids == nil {
		ids = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"opened": ids})
}

// POST /api/c/:slug/opened/:dayId — mark a day opened. Idempotent.
func (h *PublicHandler) MarkOpened(c *gin.Context) {
	tr, ok := h.tracker(c)
	if !ok {
		return
	}
	dayID, err := strconv.Atoi(c.Param("dayId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day id"})
		return
	}
	tr.MarkOpened(dayID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *PublicHandler) tracker(c *gin.Context) (*advent.Tracker, bool) {
	pub, err := h.svc.Public(c.Request.Context(), c.Param("slug"), h.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return advent.NewTracker(&cookieKV{c: c}, pub.ID), true
}

// cookieKV adapts gin's cookie access to the tracker's KV capability. Gin
// query-escapes values, which keeps the JSON list cookie-safe.
type cookieKV struct {
	c *gin.Context
}

func (k *cookieKV) Get(key string) (string, bool) {
	v, err := k.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (k *cookieKV) Set(key, value string) {
	const yearSeconds = 365 * 24 * 3600
	k.c.SetCookie(key, value, yearSeconds, "/", "", false, false)
}
