package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"scorecast/models"
)

var ErrNotFound = errors.New("not found")

// Document is the entire persisted application state: one JSON file holding
// three collections.
type Document struct {
	Users        []models.User        `json:"users"`
	Games        []models.Game        `json:"games"`
	PlayerScores []models.ScoreRecord `json:"playerScores"`
}

// GameByID returns a pointer into the document's game list, or nil if the
// game does not exist.
func (d *Document) GameByID(id int) *models.Game {
	for i := range d.Games {
		if d.Games[i].ID == id {
			return &d.Games[i]
		}
	}
	return nil
}

// UserByID returns a pointer into the document's user list, or nil if the
// user does not exist.
func (d *Document) UserByID(id int) *models.User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// Store keeps the document in memory and serializes all access with a mutex,
// so concurrent requests cannot lose updates to each other. Every mutation
// persists the whole document with a single atomic file replace.
type Store struct {
	path string

	mu  sync.Mutex
	doc *Document
}

// Open loads the document at path, seeding the file with the initial league
// data if it does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.doc = seedDocument()
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	s.doc = doc
	return s, nil
}

// Update runs fn against a copy of the document and persists the result in
// one write. If fn returns an error, nothing changes in memory or on disk.
// The store lock is held for the whole read-mutate-write cycle.
func (s *Store) Update(fn func(*Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := cloneDocument(s.doc)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	prev := s.doc
	s.doc = doc
	if err := s.persist(); err != nil {
		s.doc = prev
		return err
	}
	return nil
}

// Users returns a copy of the user collection.
func (s *Store) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := cloneDocument(s.doc)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// Games returns a copy of the game collection.
func (s *Store) Games() ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := cloneDocument(s.doc)
	if err != nil {
		return nil, err
	}
	return doc.Games, nil
}

// PlayerScores returns a copy of the settled score records.
func (s *Store) PlayerScores() ([]models.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := cloneDocument(s.doc)
	if err != nil {
		return nil, err
	}
	return doc.PlayerScores, nil
}

// UserByCredentials looks a user up by exact username and password match.
// Returns ErrNotFound when no user matches.
func (s *Store) UserByCredentials(username, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Users {
		u := s.doc.Users[i]
		if u.Username == username && u.Password == password {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// persist writes the document to a temp file in the same directory and
// renames it over the data file, so readers never see a partial write.
// Callers must hold the store lock.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// cloneDocument deep-copies the document through a JSON round trip. The
// document is small (one league), so this stays cheap.
func cloneDocument(doc *Document) (*Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to clone document: %w", err)
	}
	out := &Document{}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("failed to clone document: %w", err)
	}
	return out, nil
}
