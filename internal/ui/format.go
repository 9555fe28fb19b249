// ABOUTME: Terminal UI formatting for didi output.
// ABOUTME: Uses fatih/color for styling, glamour for markdown, x/term for width.

package ui

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/didi/internal/models"
	"golang.org/x/term"
)

const (
	DefaultWidth = 80

	titleColumn = 40
	idColumn    = 20
	hashColumn  = 30
)

var (
	faint     = color.New(color.Faint).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	cyan      = color.New(color.FgCyan).SprintFunc()
	titleCyan = color.New(color.FgCyan, color.Underline).SprintFunc()
)

// DisplayOptions selects what FormatEntries prints.
type DisplayOptions struct {
	ShowDate     bool
	ShowID       bool
	ShowHash     bool
	ShowKeywords bool
	ShowContent  bool
	ShowHidden   bool
}

// DefaultDisplayOptions shows date and content of visible entries.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{ShowDate: true, ShowContent: true}
}

// FilterVisible keeps entries that are not hidden, or all of them when
// showHidden is set.
func FilterVisible(entries []*models.Entry, showHidden bool) []*models.Entry {
	var out []*models.Entry
	for _, e := range entries {
		if e.Visible(showHidden) {
			out = append(out, e)
		}
	}
	return out
}

// FormatEntries renders the visible entries followed by a count line and
// returns how many entries were rendered.
func FormatEntries(entries []*models.Entry, opts DisplayOptions, width int) (string, int) {
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder
	shown := FilterVisible(entries, opts.ShowHidden)

	for _, e := range shown {
		sb.WriteString(Separator(width))
		sb.WriteString("\n")
		sb.WriteString(FormatEntry(e, opts))
		sb.WriteString("\n")
	}
	if len(shown) > 0 {
		sb.WriteString(Separator(width))
	}

	sb.WriteString(FormatFound(len(shown)))
	return sb.String(), len(shown)
}

// FormatEntry renders a single entry regardless of its hidden flag.
func FormatEntry(e *models.Entry, opts DisplayOptions) string {
	var sb strings.Builder

	sb.WriteString(pad(titleCyan(e.Title), e.Title, titleColumn))

	if opts.ShowDate {
		sb.WriteString(cyan(FormatDate(e.Date)))
		sb.WriteString(" ")
	}
	if opts.ShowID {
		id := fmt.Sprintf("[%d]", e.ID)
		sb.WriteString(pad(cyan(id), id, idColumn))
	}
	if opts.ShowHash {
		hash := fmt.Sprintf("[%s]", e.HashHex())
		sb.WriteString(pad(cyan(hash), hash, hashColumn))
	}
	sb.WriteString("\n")

	if opts.ShowKeywords {
		colored := make([]string, len(e.Keywords))
		for i, k := range e.Keywords {
			colored[i] = cyan(k)
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(colored, ", ")))
	}

	if opts.ShowContent {
		sb.WriteString(e.Content)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatEntryHeader is the metadata block printed above rendered content.
func FormatEntryHeader(e *models.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(e.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(e.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Date:"), faint(FormatDate(e.Date))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Hash:"), faint(e.HashHex())))
	if len(e.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Keywords:"), cyan(strings.Join(e.Keywords, ", "))))
	}
	if e.Hidden {
		sb.WriteString(fmt.Sprintf("%s\n", faint("(hidden)")))
	}

	sb.WriteString(Separator(50))
	return sb.String()
}

func FormatEntryContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatDate(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

func FormatFound(n int) string {
	if n == 1 {
		return fmt.Sprintf("Found %s entry.\n", cyan(n))
	}
	return fmt.Sprintf("Found %s entries.\n", cyan(n))
}

func FormatChanged(n int64) string {
	if n == 1 {
		return fmt.Sprintf("Changed %s entry.\n", cyan(n))
	}
	return fmt.Sprintf("Changed %s entries.\n", cyan(n))
}

// Welcome is printed once the diary has been opened.
func Welcome(user, path string) string {
	return fmt.Sprintf("Welcome %s at '%s'!\n", cyan(user), cyan(path))
}

func Prompt(label string) string {
	return cyan(label)
}

func Separator(width int) string {
	return strings.Repeat("-", width) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

// TerminalWidth returns the width of the terminal on f, or DefaultWidth when
// f is not a terminal.
func TerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// pad right-pads a styled string to width using the length of its plain text.
func pad(styled, plain string, width int) string {
	n := utf8.RuneCountInString(plain)
	if n >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-n)
}
