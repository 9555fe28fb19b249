// ABOUTME: Entry model representing a dated diary entry with keywords.
// ABOUTME: Provides keyword normalization, hashing, and search/visibility predicates.

package models

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// KeywordSeparator joins keywords in the keywords column.
const KeywordSeparator = ";"

// DateLayout is the persisted form of Entry.Date.
const DateLayout = time.RFC3339Nano

type Entry struct {
	ID       int64     `json:"id"`
	Hash     []byte    `json:"hash"`
	Date     time.Time `json:"date"`
	Keywords []string  `json:"keywords"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Hidden   bool      `json:"hidden"`
}

// NewEntry builds an unsaved entry stamped with the current local time.
func NewEntry(keywords []string, title, content string) *Entry {
	return newEntryAt(keywords, title, content, time.Now())
}

func newEntryAt(keywords []string, title, content string, now time.Time) *Entry {
	kw := NormalizeKeywords(keywords)
	return &Entry{
		Hash:     ComputeHash(JoinKeywords(kw), title, content, FormatDate(now)),
		Date:     now,
		Keywords: kw,
		Title:    title,
		Content:  content,
	}
}

// NormalizeKeywords lowercases, trims, sorts and deduplicates keywords.
// Empty keywords are dropped and values containing the storage separator are split.
func NormalizeKeywords(keywords []string) []string {
	var out []string
	for _, k := range keywords {
		for _, part := range strings.Split(k, KeywordSeparator) {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	sort.Strings(out)

	deduped := out[:0]
	for i, k := range out {
		if i > 0 && k == out[i-1] {
			continue
		}
		deduped = append(deduped, k)
	}
	if len(deduped) == 0 {
		return nil
	}
	return deduped
}

func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, KeywordSeparator)
}

func SplitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, KeywordSeparator)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ComputeHash returns the SHA-256 fingerprint of an entry's creation inputs.
func ComputeHash(keywords, title, content, date string) []byte {
	h := sha256.New()
	h.Write([]byte(keywords))
	h.Write([]byte(title))
	h.Write([]byte(content))
	h.Write([]byte(date))
	return h.Sum(nil)
}

func (e *Entry) HashHex() string {
	return hex.EncodeToString(e.Hash)
}

// Visible reports whether the entry is shown under the given hidden toggle.
func (e *Entry) Visible(showHidden bool) bool {
	return !e.Hidden || showHidden
}

// Matches reports whether any term is contained in the lowercased title or
// equals one of the keywords. Terms are expected to be lowercase.
func (e *Entry) Matches(terms []string) bool {
	title := strings.ToLower(e.Title)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(title, term) {
			return true
		}
		for _, k := range e.Keywords {
			if k == term {
				return true
			}
		}
	}
	return false
}
