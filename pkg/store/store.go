package store

import (
	"database/sql"
	"encoding/json"
	"log"

	_ "modernc.org/sqlite"

	"valia_backend/internal/model"
)

// Key names one stored collection.
type Key string

const (
	KeyProperties Key = "properties"
	KeyAgents     Key = "agents"
	KeyInquiries  Key = "inquiries"
	KeyBookings   Key = "bookings"

	keySettings Key = "settings"
)

// Store persists whole collections as JSON documents in a single key/value
// table. An unreachable medium degrades the store instead of failing it:
// reads come back empty and writes are dropped, so callers never see a
// storage error.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the store at path. Open never fails; a store whose
// medium cannot be prepared runs degraded.
func Open(path string) *Store {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("store unavailable (%v), running with empty collections", err)
		return &Store{}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`); err != nil {
		log.Printf("store unavailable (%v), running with empty collections", err)
		db.Close()
		return &Store{}
	}

	return &Store{db: db}
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) read(key Key) []byte {
	if s.db == nil {
		return nil
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM collections WHERE key = ?`, string(key)).Scan(&data)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("store: could not read %s: %v", key, err)
		}
		return nil
	}
	return []byte(data)
}

func (s *Store) write(key Key, data []byte) {
	if s.db == nil {
		return
	}

	_, err := s.db.Exec(`INSERT INTO collections (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`, string(key), string(data))
	if err != nil {
		log.Printf("store: could not persist %s: %v", key, err)
	}
}

// Get returns the collection stored under key. A missing key, an unavailable
// medium and undecodable data all read as an empty collection.
func Get[T any](s *Store, key Key) []T {
	data := s.read(key)
	if data == nil {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("store: discarding undecodable data under %s: %v", key, err)
		return nil
	}
	return items
}

// Put replaces the whole collection stored under key.
func Put[T any](s *Store, key Key, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("store: could not encode %s: %v", key, err)
		return
	}
	s.write(key, data)
}

// Settings returns the stored settings record, or the defaults when none has
// been saved yet.
func (s *Store) Settings() model.Settings {
	data := s.read(keySettings)
	if data == nil {
		return model.DefaultSettings()
	}

	var settings model.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.DefaultSettings()
	}
	return settings
}

// SetSettings overwrites the settings record as a whole.
func (s *Store) SetSettings(settings model.Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("store: could not encode settings: %v", err)
		return
	}
	s.write(keySettings, data)
}
