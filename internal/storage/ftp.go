package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jlaffaye/ftp"

	"advent-creator/internal/config"
)

// FTP uploads to a remote media host and builds public URLs under its base
// URL. The connection is dialed lazily and redialed after failures.
type FTP struct {
	cfg  config.FTPConfig
	conn *ftp.ServerConn
}

func NewFTP(cfg config.FTPConfig) *FTP {
	return &FTP{cfg: cfg}
}

func (f *FTP) connect() error {
	if f.conn != nil {
		return nil
	}
	addr := f.cfg.Host + ":" + f.cfg.Port
	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("connect to ftp: %w", err)
	}
	if err := conn.Login(f.cfg.User, f.cfg.Password); err != nil {
		conn.Quit()
		return fmt.Errorf("login to ftp: %w", err)
	}
	f.conn = conn
	return nil
}

func (f *FTP) Store(ctx context.Context, fileName string, data io.Reader) (string, error) {
	if err := f.connect(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "-" + fileName
	if err := f.conn.Stor(name, data); err != nil {
		// Dropped connections surface here; force a redial next time.
		f.conn.Quit()
		f.conn = nil
		return "", fmt.Errorf("upload file: %w", err)
	}
	return strings.TrimSuffix(f.cfg.BaseURL, "/") + "/" + name, nil
}

// Close quits the FTP session if one was opened.
func (f *FTP) Close() error {
	if f.conn != nil {
		return f.conn.Quit()
	}
	return nil
}
