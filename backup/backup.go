// Package backup takes a nightly copy of the upload directory.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const stampLayout = "2006-01-02_15-04-05"

type Scheduler struct {
	Src       string
	Dest      string
	Retention time.Duration
	Hour      int
	Minute    int
	Log       zerolog.Logger
	Now       func() time.Time
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Next returns the first Hour:Minute strictly after now.
func (s *Scheduler) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// Run backs up once a day until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.Next(s.now())
		s.Log.Info().Time("next", next).Msg("next upload backup scheduled")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if dest, err := s.RunOnce(); err != nil {
			s.Log.Error().Err(err).Msg("upload backup failed")
		} else {
			s.Log.Info().Str("dest", dest).Msg("uploads backed up")
		}
	}
}

// RunOnce copies Src into a timestamped folder and prunes old folders.
func (s *Scheduler) RunOnce() (string, error) {
	destDir := filepath.Join(s.Dest, s.now().Format(stampLayout))
	if err := copyDir(s.Src, destDir); err != nil {
		return "", fmt.Errorf("back up %s: %w", s.Src, err)
	}
	s.cleanup()
	return destDir, nil
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			err = copyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanup removes backup folders whose stamp is older than Retention.
func (s *Scheduler) cleanup() {
	entries, err := os.ReadDir(s.Dest)
	if err != nil {
		s.Log.Warn().Err(err).Msg("read backup directory")
		return
	}

	cutoff := s.now().Add(-s.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		stamp, err := time.ParseInLocation(stampLayout, entry.Name(), s.now().Location())
		if err != nil || !stamp.Before(cutoff) {
			continue
		}
		path := filepath.Join(s.Dest, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			s.Log.Warn().Err(err).Str("path", path).Msg("remove old backup")
		} else {
			s.Log.Info().Str("path", path).Msg("removed old backup")
		}
	}
}
