package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/idilsaglam/hangman/internal/model"
)

// SQLite-backed word storage. One file, one table.
// Every call opens its own connection and closes it before returning;
// no locking, fine for a local single-user game.

const DefaultPath = "words.db"

var (
	ErrNoDatabase    = errors.New("database file not found")
	ErrNoTable       = errors.New("words table does not exist")
	ErrDuplicateWord = errors.New("word already exists")
	ErrNoWord        = errors.New("no word with that id")
)

const schema = `CREATE TABLE IF NOT EXISTS words (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT UNIQUE NOT NULL,
	difficulty TEXT NOT NULL
)`

// Store persists words tagged with a difficulty.
type Store struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, log: log.With().Str("db", path).Logger()}
}

func (s *Store) Path() string { return s.path }

// Create makes the database file and the words table if they are missing.
func (s *Store) Create() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	s.log.Debug().Msg("schema ready")
	return nil
}

// open connects to an existing database that already has the words table.
func (s *Store) open() (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDatabase, s.path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'words'`).Scan(&name)
	if err != nil {
		db.Close()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNoTable, s.path)
		}
		return nil, fmt.Errorf("check table: %w", err)
	}
	return db, nil
}

// Add stores word under difficulty and returns its id. A word that is
// already stored is logged and skipped: the returned id is 0 and err is nil.
func (s *Store) Add(word string, difficulty model.Difficulty) (int64, error) {
	word = model.NormalizeWord(word)
	if err := model.ValidateWord(word); err != nil {
		return 0, fmt.Errorf("add %q: %w", word, err)
	}
	if !difficulty.Valid() {
		return 0, fmt.Errorf("add %q: %w", word, model.ErrInvalidDifficulty)
	}

	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec(`INSERT INTO words (word, difficulty) VALUES (?, ?)`, word, string(difficulty))
	if err != nil {
		if isUnique(err) {
			s.log.Warn().Str("word", word).Msg("word already in the table, skipped")
			return 0, nil
		}
		return 0, fmt.Errorf("insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	s.log.Debug().Int64("id", id).Str("word", word).Str("difficulty", string(difficulty)).Msg("word added")
	return id, nil
}

// Get returns the words tagged with difficulty, never nil.
func (s *Store) Get(difficulty model.Difficulty) ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word FROM words WHERE difficulty = ? ORDER BY id`, string(difficulty))
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// GetAll returns every record ordered by id.
func (s *Store) GetAll() ([]model.Word, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, word, difficulty FROM words ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	defer rows.Close()

	out := []model.Word{}
	for rows.Next() {
		var w model.Word
		var d string
		if err := rows.Scan(&w.ID, &w.Text, &d); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		w.Difficulty = model.Difficulty(d)
		out = append(out, w)
	}
	return out, rows.Err()
}

// Patch holds the fields to change; nil fields are left alone.
type Patch struct {
	Word       *string
	Difficulty *model.Difficulty
}

// Update applies p to the record with id. Every provided field is
// validated before anything is written; an unknown id yields ErrNoWord.
func (s *Store) Update(id int64, p Patch) error {
	var sets []string
	var args []any
	if p.Word != nil {
		word := model.NormalizeWord(*p.Word)
		if err := model.ValidateWord(word); err != nil {
			return fmt.Errorf("update %d: %w", id, err)
		}
		sets = append(sets, "word = ?")
		args = append(args, word)
	}
	if p.Difficulty != nil {
		if !p.Difficulty.Valid() {
			return fmt.Errorf("update %d: %w", id, model.ErrInvalidDifficulty)
		}
		sets = append(sets, "difficulty = ?")
		args = append(args, string(*p.Difficulty))
	}
	if len(sets) == 0 {
		return nil
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	args = append(args, id)
	res, err := db.Exec(`UPDATE words SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		if isUnique(err) {
			return fmt.Errorf("update %d: %w", id, ErrDuplicateWord)
		}
		return fmt.Errorf("update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update %d: %w", id, ErrNoWord)
	}
	s.log.Debug().Int64("id", id).Msg("word updated")
	return nil
}

// Delete removes the record with id. Unknown ids are not an error.
func (s *Store) Delete(id int64) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(`DELETE FROM words WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	s.log.Debug().Int64("id", id).Msg("word deleted")
	return nil
}

func isUnique(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
}
