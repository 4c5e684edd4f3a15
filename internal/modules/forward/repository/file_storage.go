package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/reshetovitsme/approval-relay/internal/modules/forward/domain"
	"github.com/samber/oops"
)

// FileStorage implements Repository using one JSON file per forwarded
// message, grouped by source chat.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based forward repository
func NewFileStorage(basePath string) (*FileStorage, error) {
	recordPath := filepath.Join(basePath, "forwarded")
	if err := os.MkdirAll(recordPath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create forwarded directory").Wrap(err)
	}

	return &FileStorage{basePath: recordPath}, nil
}

func (s *FileStorage) path(key domain.Key) string {
	return filepath.Join(s.basePath, strconv.FormatInt(key.ChatID, 10), fmt.Sprintf("%d.json", key.MessageID))
}

func (s *FileStorage) Has(key domain.Key) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, oops.With("key", key.String(), "context", "failed to stat record").Wrap(err)
}

func (s *FileStorage) Record(record *domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(record.Key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return oops.With("record_dir", filepath.Dir(path), "context", "failed to create record directory").Wrap(err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return oops.With("key", record.Key.String(), "context", "failed to marshal record").Wrap(err)
	}

	// Write then rename so a crash never leaves a half-written record behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return oops.With("key", record.Key.String(), "context", "failed to write record").Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return oops.With("key", record.Key.String(), "context", "failed to commit record").Wrap(err)
	}
	return nil
}

func (s *FileStorage) Prune(before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats, err := os.ReadDir(s.basePath)
	if err != nil {
		return 0, oops.With("base_path", s.basePath, "context", "failed to read forwarded directory").Wrap(err)
	}

	removed := 0
	for _, chat := range chats {
		if !chat.IsDir() {
			continue
		}
		chatDir := filepath.Join(s.basePath, chat.Name())
		entries, err := os.ReadDir(chatDir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}

			path := filepath.Join(chatDir, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}

			var record domain.Record
			if err := json.Unmarshal(data, &record); err != nil {
				continue
			}

			if record.ForwardedAt.Before(before) {
				if err := os.Remove(path); err != nil {
					return removed, oops.With("path", path, "context", "failed to remove record").Wrap(err)
				}
				removed++
			}
		}
	}

	return removed, nil
}

func (s *FileStorage) Close() error {
	return nil
}
