// ABOUTME: Tests for entry export and import formats.
// ABOUTME: Checks that hash, date, and content survive JSON and markdown round trips.

package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harper/didi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() *models.Entry {
	date := time.Date(2023, 12, 24, 18, 5, 1, 500, time.FixedZone("", -8*3600))
	content := "Snow all day.\n\n---\nStill snowing."
	return &models.Entry{
		ID:       12,
		Hash:     models.ComputeHash("holiday;winter", "Christmas Eve", content, models.FormatDate(date)),
		Date:     date,
		Keywords: []string{"holiday", "winter"},
		Title:    "Christmas Eve",
		Content:  content,
		Hidden:   true,
	}
}

func assertSameEntry(t *testing.T, want, got *models.Entry) {
	t.Helper()
	assert.Equal(t, want.Hash, got.Hash)
	assert.True(t, want.Date.Equal(got.Date), "date changed: %v != %v", want.Date, got.Date)
	assert.Equal(t, models.FormatDate(want.Date), models.FormatDate(got.Date))
	assert.Equal(t, want.Keywords, got.Keywords)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.Hidden, got.Hidden)
}

func TestJSONRoundTrip(t *testing.T) {
	e := sampleEntry()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*models.Entry{e}, time.Now()))
	assert.Contains(t, buf.String(), `"version": "1.0"`)

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assertSameEntry(t, e, got[0])
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	assert.Error(t, err)

	_, err = ReadJSON(strings.NewReader(`{"entries":[{"title":"x","hash":"zz"}]}`))
	assert.Error(t, err)
}

func TestMarkdownRoundTrip(t *testing.T) {
	e := sampleEntry()

	data, err := MarshalMarkdown(e)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
	assert.Contains(t, string(data), "title: Christmas Eve")

	got, err := ParseMarkdown("0012-Christmas Eve.md", data)
	require.NoError(t, err)
	assertSameEntry(t, e, got)
}

func TestParseMarkdownWithoutFrontMatter(t *testing.T) {
	got, err := ParseMarkdown("/tmp/notes/Rainy day.md", []byte("\n  Stayed inside.  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Rainy day", got.Title)
	assert.Equal(t, "Stayed inside.", got.Content)
	assert.Empty(t, got.Hash)
}

func TestParseMarkdownEmpty(t *testing.T) {
	_, err := ParseMarkdown("empty.md", []byte("   \n"))
	assert.Error(t, err)
}

func TestMarkdownFilename(t *testing.T) {
	e := &models.Entry{ID: 3, Title: "a/b: c?"}
	assert.Equal(t, "0003-a-b- c-.md", MarkdownFilename(e))
}
