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
	"advent-creator/internal/storage"
)

type CalendarHandler struct {
	svc   *service.CalendarService
	store storage.Storage
}

func NewCalendarHandler(svc *service.CalendarService, store storage.Storage) *CalendarHandler {
	return &CalendarHandler{svc: svc, store: store}
}

// POST /api/calendars  multipart: name, slug, password?, background?
func (h *CalendarHandler) Create(c *gin.Context) {
	name := c.PostForm("name")
	slug := c.PostForm("slug")
	if name == "" || slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and slug are required"})
		return
	}

	backgroundURL, ok := h.uploadBackground(c)
	if !ok {
		return
	}

	cal, err := h.svc.Create(c.Request.Context(), name, slug, c.PostForm("password"), backgroundURL)
	if err != nil {
		logger.Error("calendar.create failed", "slug", slug, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create calendar"})
		return
	}
	logger.Info("calendar.created", "id", cal.ID, "slug", cal.Slug)
	c.JSON(http.StatusOK, cal)
}

// GET /api/calendars
func (h *CalendarHandler) List(c *gin.Context) {
	cals, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if cals == nil {
		cals = []model.Calendar{}
	}
	c.JSON(http.StatusOK, cals)
}

// GET /api/calendars/:id — admin view, days included, password still masked.
func (h *CalendarHandler) Get(c *gin.Context) {
	cal, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cal)
}

// PUT /api/calendars/:id  multipart settings form, optional new background.
func (h *CalendarHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	password := c.PostForm("password")
	p := service.UpdateParams{
		Name:         c.PostForm("name"),
		Slug:         c.PostForm("slug"),
		Password:     &password,
		IsPublished:  c.PostForm("isPublished") == "true",
		IsTest:       c.PostForm("isTest") == "true",
		DefaultStyle: c.PostForm("defaultStyle"),
		DefaultColor: c.PostForm("defaultColor"),
		DefaultText:  c.PostForm("defaultTextColor"),
	}
	if v, err := strconv.ParseFloat(c.PostForm("defaultSize"), 64); err == nil {
		p.DefaultSize = v
	}
	if v, err := strconv.ParseFloat(c.PostForm("defaultFontSize"), 64); err == nil {
		p.DefaultFont = v
	}

	url, ok := h.uploadBackground(c)
	if !ok {
		return
	}
	if url != "" {
		p.BackgroundURL = &url
	}

	if err := h.svc.Update(c.Request.Context(), id, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.Error("calendar.update failed", "id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update calendar"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// uploadBackground stores an optional background file. A missing file is
// fine (empty url); a storage failure writes the error response and returns
// ok=false.
func (h *CalendarHandler) uploadBackground(c *gin.Context) (string, bool) {
	file, err := c.FormFile("background")
	if err != nil || file.Size == 0 {
		return "", true
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable background file"})
		return "", false
	}
	defer src.Close()

	url, err := h.store.Store(c.Request.Context(), file.Filename, src)
	if err != nil {
		logger.Error("background upload failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "background upload failed"})
		return "", false
	}
	return url, true
}
