// ABOUTME: Database operations for diary entries.
// ABOUTME: Provides append, list, search, lookup, and visibility updates.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/didi/internal/models"
)

var ErrEntryNotFound = errors.New("entry not found")

const entryColumns = `id, hash, date, keywords, title, content, hidden`

// AddEntry normalizes the input into a new entry and appends it.
func AddEntry(db *sql.DB, keywords []string, title, content string) (*models.Entry, error) {
	entry := models.NewEntry(keywords, title, content)
	if err := CreateEntry(db, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateEntry inserts entry as a single statement and sets entry.ID.
func CreateEntry(db *sql.DB, entry *models.Entry) error {
	result, err := db.Exec(
		`INSERT INTO entries (hash, date, keywords, title, content, hidden)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Hash,
		models.FormatDate(entry.Date),
		models.JoinKeywords(entry.Keywords),
		entry.Title,
		entry.Content,
		entry.Hidden,
	)
	if err != nil {
		return fmt.Errorf("%w: insert entry: %w", ErrStorage, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: read entry id: %w", ErrStorage, err)
	}
	entry.ID = id
	return nil
}

// ImportEntry appends a previously exported entry. Date and hash are kept as
// given; only the id is assigned anew.
func ImportEntry(db *sql.DB, entry *models.Entry) error {
	if len(entry.Hash) == 0 {
		return fmt.Errorf("import %q: missing hash", entry.Title)
	}
	entry.Keywords = models.NormalizeKeywords(entry.Keywords)
	return CreateEntry(db, entry)
}

// ListEntries returns every entry in storage order, hidden ones included.
func ListEntries(db *sql.DB) ([]*models.Entry, error) {
	rows, err := db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query entries: %w", ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read entries: %w", ErrStorage, err)
	}
	return entries, nil
}

// SearchEntries returns, in storage order, the entries whose title contains
// one of terms or whose keywords include one of terms.
func SearchEntries(db *sql.DB, terms []string) ([]*models.Entry, error) {
	entries, err := ListEntries(db)
	if err != nil {
		return nil, err
	}

	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}

	var found []*models.Entry
	for _, e := range entries {
		if e.Matches(lowered) {
			found = append(found, e)
		}
	}
	return found, nil
}

func GetEntryByID(db *sql.DB, id int64) (*models.Entry, error) {
	row := db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrEntryNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// SetHidden sets the hidden flag on every id and returns how many rows were
// updated. Every existing id counts, whatever its previous state; unknown ids
// count zero.
func SetHidden(db *sql.DB, ids []int64, hidden bool) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	var changed int64
	for _, id := range ids {
		result, err := tx.Exec(
			`UPDATE entries SET hidden = ? WHERE id = ?`,
			hidden, id,
		)
		if err != nil {
			return 0, fmt.Errorf("%w: update entry %d: %w", ErrStorage, id, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("%w: update entry %d: %w", ErrStorage, id, err)
		}
		changed += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %w", ErrStorage, err)
	}
	return changed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	entry := &models.Entry{}
	var date, keywords string
	err := row.Scan(&entry.ID, &entry.Hash, &date, &keywords, &entry.Title, &entry.Content, &entry.Hidden)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan entry: %w", ErrStorage, err)
	}

	entry.Date, err = models.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date for entry %d: %w", entry.ID, err)
	}
	entry.Keywords = models.SplitKeywords(keywords)
	return entry, nil
}
