// Package audit provides AuditSink implementations: an append-only local
// text file (the default) and a Redis list for shipping the trail off-box.
package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_desk/internal/adapters/observability"
)

const stampLayout = "2006-01-02 15:04:05"

// FileSink appends timestamped lines to a local text file. The file is
// write-only and never re-read by the program.
type FileSink struct {
	f *os.File
}

func NewFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return &FileSink{f: f}, nil
}

func (s *FileSink) Append(_ context.Context, line string) error {
	_, err := fmt.Fprintf(s.f, "%s - %s\n", time.Now().Format(stampLayout), line)
	if err != nil {
		observability.ObserveAudit("file", "error")
		log.Error().Err(err).Msg("audit file append failed")
		return err
	}
	observability.ObserveAudit("file", "append")
	return nil
}

func (s *FileSink) Close() error {
	if err := s.f.Sync(); err != nil {
		return err
	}
	return s.f.Close()
}
