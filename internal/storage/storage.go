// Package storage holds the media upload backends. Handlers only see the
// Storage interface; which backend runs is a deployment choice.
package storage

import (
	"context"
	"fmt"
	"io"

	"advent-creator/internal/config"
)

// Storage persists one uploaded file and returns the URL it will be served
// from.
type Storage interface {
	Store(ctx context.Context, fileName string, data io.Reader) (string, error)
}

// New selects a backend from config.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocal(cfg.Local.Dir, cfg.Local.BaseURL)
	case "ftp":
		return NewFTP(cfg.FTP), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
