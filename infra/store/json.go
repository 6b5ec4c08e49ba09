package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	tasksFile    = "tasks.json"
	scheduleFile = "last_schedule.json"
)

// JSONStore persists documents as indented JSON files under a directory.
type JSONStore struct {
	dir string
	mu  sync.Mutex
}

// NewJSONStore creates the storage directory if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// TasksPath returns the location of the saved tasks document.
func (s *JSONStore) TasksPath() string { return filepath.Join(s.dir, tasksFile) }

// SchedulePath returns the location of the last schedule snapshot.
func (s *JSONStore) SchedulePath() string { return filepath.Join(s.dir, scheduleFile) }

func (s *JSONStore) SaveTasks(ctx context.Context, doc TasksDocument) error {
	return s.write(s.TasksPath(), doc)
}

func (s *JSONStore) LoadTasks(ctx context.Context) (TasksDocument, error) {
	var doc TasksDocument
	err := s.read(s.TasksPath(), &doc)
	return doc, err
}

func (s *JSONStore) SaveSchedule(ctx context.Context, snap Snapshot) error {
	return s.write(s.SchedulePath(), snap)
}

func (s *JSONStore) LoadSchedule(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := s.read(s.SchedulePath(), &snap)
	return snap, err
}

func (s *JSONStore) write(path string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (s *JSONStore) read(path string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, doc)
}
