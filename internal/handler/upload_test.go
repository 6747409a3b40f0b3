package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	url string
	err error
	got string
}

func (m *mockStorage) Store(ctx context.Context, fileName string, data io.Reader) (string, error) {
	b, _ := io.ReadAll(data)
	m.got = string(b)
	return m.url, m.err
}

func multipartBody(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &mockStorage{url: "/uploads/abc-song.mp3"}
	r := gin.New()
	r.POST("/api/upload", NewUploadHandler(store).Upload)

	body, contentType := multipartBody(t, "file", "song.mp3", "mp3 bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"/uploads/abc-song.mp3"}`, w.Body.String())
	assert.Equal(t, "mp3 bytes", store.got)
}

func TestUpload_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", NewUploadHandler(&mockStorage{}).Upload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/upload", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_StorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", NewUploadHandler(&mockStorage{err: errors.New("disk full")}).Upload)

	body, contentType := multipartBody(t, "file", "a.png", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
