// ABOUTME: Backup formats for diary entries.
// ABOUTME: JSON documents and markdown files with YAML front matter, both lossless.

package export

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/didi/internal/models"
	"gopkg.in/yaml.v3"
)

const Version = "1.0"

// ExportEntry is the serialized form of an entry. Date is kept as the
// persisted string so the hash inputs survive a round trip unchanged.
type ExportEntry struct {
	ID       int64    `json:"id" yaml:"id"`
	Hash     string   `json:"hash" yaml:"hash"`
	Date     string   `json:"date" yaml:"date"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"-"`
	Hidden   bool     `json:"hidden" yaml:"hidden"`
}

type ExportData struct {
	ExportedAt time.Time     `json:"exported_at"`
	Version    string        `json:"version"`
	Entries    []ExportEntry `json:"entries"`
}

func FromEntry(e *models.Entry) ExportEntry {
	return ExportEntry{
		ID:       e.ID,
		Hash:     e.HashHex(),
		Date:     models.FormatDate(e.Date),
		Keywords: e.Keywords,
		Title:    e.Title,
		Content:  e.Content,
		Hidden:   e.Hidden,
	}
}

// ToEntry converts back to a model. An empty hash is allowed and yields an
// entry without one; callers treat such entries as new.
func (x ExportEntry) ToEntry() (*models.Entry, error) {
	e := &models.Entry{
		ID:       x.ID,
		Keywords: models.NormalizeKeywords(x.Keywords),
		Title:    x.Title,
		Content:  x.Content,
		Hidden:   x.Hidden,
	}

	if x.Hash != "" {
		hash, err := hex.DecodeString(x.Hash)
		if err != nil {
			return nil, fmt.Errorf("invalid hash for %q: %w", x.Title, err)
		}
		e.Hash = hash
	}

	if x.Date != "" {
		date, err := models.ParseDate(x.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date for %q: %w", x.Title, err)
		}
		e.Date = date
	}

	return e, nil
}

func WriteJSON(w io.Writer, entries []*models.Entry, now time.Time) error {
	data := ExportData{
		ExportedAt: now,
		Version:    Version,
		Entries:    make([]ExportEntry, 0, len(entries)),
	}
	for _, e := range entries {
		data.Entries = append(data.Entries, FromEntry(e))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ReadJSON(r io.Reader) ([]*models.Entry, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}

	entries := make([]*models.Entry, 0, len(data.Entries))
	for _, x := range data.Entries {
		e, err := x.ToEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MarshalMarkdown writes the entry as front matter followed by its content.
func MarshalMarkdown(e *models.Entry) ([]byte, error) {
	frontmatter, err := yaml.Marshal(FromEntry(e))
	if err != nil {
		return nil, fmt.Errorf("encode front matter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(frontmatter)
	sb.WriteString("---\n\n")
	sb.WriteString(e.Content)
	return []byte(sb.String()), nil
}

// ParseMarkdown reads a markdown entry. Files without front matter become a
// new entry titled after the file name.
func ParseMarkdown(name string, data []byte) (*models.Entry, error) {
	content := string(data)

	if strings.HasPrefix(content, "---\n") {
		parts := strings.SplitN(content, "---\n", 3)
		if len(parts) == 3 {
			var x ExportEntry
			if err := yaml.Unmarshal([]byte(parts[1]), &x); err != nil {
				return nil, fmt.Errorf("parse front matter: %w", err)
			}
			x.Content = strings.TrimPrefix(parts[2], "\n")
			if x.Title == "" {
				x.Title = titleFromName(name)
			}
			return x.ToEntry()
		}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("entry content cannot be empty")
	}
	return &models.Entry{Title: titleFromName(name), Content: content}, nil
}

// MarkdownFilename names the exported file for an entry.
func MarkdownFilename(e *models.Entry) string {
	return fmt.Sprintf("%04d-%s.md", e.ID, sanitizeFilename(e.Title))
}

func titleFromName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), ".md")
}

func sanitizeFilename(name string) string {
	// Replace unsafe characters
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
