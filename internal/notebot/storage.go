package notebot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

// Note is one saved note in a guild.
type Note struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

// Record is everything the bot persists per guild.
type Record struct {
	Notes         []Note            `json:"notes"`
	CommandHashes map[string]string `json:"command_hashes"`
}

// Store is the bot's shared state: guild notes plus the published-command
// hash cache, persisted through a JSON-file datastore. Safe for concurrent
// use from handlers.
type Store struct {
	ds *datastore.DataStore
}

// NewStore opens (or creates) the datastore file at path.
func NewStore(path string) (*Store, error) {
	ds, err := datastore.New(path)
	if err != nil {
		return nil, err
	}
	return &Store{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Store) Close() error {
	return s.ds.Close()
}

// getOrCreateRecord loads a guild's record, creating an empty one on first
// access. The datastore hands values back as generic JSON, so they are
// round-tripped through encoding/json into the typed record.
func (s *Store) getOrCreateRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		record := &Record{CommandHashes: map[string]string{}}
		s.ds.Add(guildID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}
	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	if record.CommandHashes == nil {
		record.CommandHashes = map[string]string{}
	}
	return &record, nil
}

// AddNote appends a note to a guild's record.
func (s *Store) AddNote(guildID string, n Note) error {
	record, err := s.getOrCreateRecord(guildID)
	if err != nil {
		return err
	}
	record.Notes = append(record.Notes, n)
	s.ds.Add(guildID, record)
	return nil
}

// Notes returns all notes of a guild in insertion order.
func (s *Store) Notes(guildID string) ([]Note, error) {
	record, err := s.getOrCreateRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Notes, nil
}

// RemoveNote deletes a note by id. The bool reports whether it existed.
func (s *Store) RemoveNote(guildID, id string) (bool, error) {
	record, err := s.getOrCreateRecord(guildID)
	if err != nil {
		return false, err
	}
	for i, n := range record.Notes {
		if n.ID == id {
			record.Notes = append(record.Notes[:i], record.Notes[i+1:]...)
			s.ds.Add(guildID, record)
			return true, nil
		}
	}
	return false, nil
}

// CommandHashes returns the cached published-command hashes for a guild.
func (s *Store) CommandHashes(guildID string) (map[string]string, error) {
	record, err := s.getOrCreateRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandHashes, nil
}

// SetCommandHashes replaces a guild's published-command hash cache.
func (s *Store) SetCommandHashes(guildID string, hashes map[string]string) error {
	record, err := s.getOrCreateRecord(guildID)
	if err != nil {
		return err
	}
	record.CommandHashes = hashes
	s.ds.Add(guildID, record)
	return nil
}
