// Package storage holds uploaded blobs on local disk for a bounded
// retention window. Files are ephemeral like everything else here:
// each stored blob gets a scheduled deletion, cancellable while the
// timer is still pending.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/domain"
)

// Store is the blob-store contract the upload endpoint talks to.
type Store interface {
	Save(originalName, mimeType string, src io.Reader) (domain.Attachment, error)
	ScheduleDelete(filename string)
	CancelDelete(filename string) bool
}

// DiskStore writes blobs under a single directory and serves their
// descriptors with a path under urlPrefix.
type DiskStore struct {
	dir       string
	urlPrefix string
	retention time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewDiskStore(dir, urlPrefix string, retention time.Duration) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		dir:       dir,
		urlPrefix: urlPrefix,
		retention: retention,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Save streams src to disk under a collision-free name and returns the
// blob descriptor. The original name survives only in the descriptor.
func (s *DiskStore) Save(originalName, mimeType string, src io.Reader) (domain.Attachment, error) {
	name := uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("create blob: %w", err)
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return domain.Attachment{}, fmt.Errorf("write blob: %w", err)
	}
	// A failed close means a possibly truncated blob; never hand out
	// its descriptor.
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return domain.Attachment{}, fmt.Errorf("close blob: %w", err)
	}

	log.Info().Str("module", "storage").Str("file", name).Int64("size", size).Msg("blob stored")
	return domain.Attachment{
		Filename:     name,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		Path:         s.urlPrefix + "/" + name,
	}, nil
}

// ScheduleDelete arms the retention timer for a stored blob. Deletion
// failures are logged and swallowed; there is nothing to retry into.
func (s *DiskStore) ScheduleDelete(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[filename]; ok {
		t.Stop()
	}
	s.timers[filename] = time.AfterFunc(s.retention, func() {
		s.mu.Lock()
		delete(s.timers, filename)
		s.mu.Unlock()
		if err := os.Remove(filepath.Join(s.dir, filename)); err != nil {
			log.Warn().Err(err).Str("module", "storage").Str("file", filename).Msg("blob delete failed")
			return
		}
		log.Info().Str("module", "storage").Str("file", filename).Msg("blob expired")
	})
}

// CancelDelete disarms a pending deletion. Reports whether a timer was
// still pending. Unused by the relay today; kept for explicit unsend.
func (s *DiskStore) CancelDelete(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[filename]
	if !ok {
		return false
	}
	delete(s.timers, filename)
	return t.Stop()
}
