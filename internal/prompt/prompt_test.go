// ABOUTME: Tests for interactive input helpers.
// ABOUTME: Uses in-memory readers in place of a terminal.

package prompt

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  My title  \nrest\n"))

	got, err := ReadLine(reader, &out, "Title: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "My title" {
		t.Errorf("expected %q, got %q", "My title", got)
	}
	if out.String() != "Title: " {
		t.Errorf("expected prompt to be written, got %q", out.String())
	}
}

func TestReadLineWithoutNewline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("last"))

	got, err := ReadLine(reader, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "last" {
		t.Errorf("expected %q, got %q", "last", got)
	}
}

func TestReadLineEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	if _, err := ReadLine(reader, &bytes.Buffer{}, ""); err == nil {
		t.Error("expected error on empty input")
	}
}

func TestReadMultiline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("first line\r\nsecond line\n\nkeywords here\n"))

	got, err := ReadMultiline(reader, &bytes.Buffer{}, "Content: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first line\nsecond line" {
		t.Errorf("unexpected content %q", got)
	}

	next, err := ReadLine(reader, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "keywords here" {
		t.Errorf("expected reader to stop after the blank line, got %q", next)
	}
}

func TestReadMultilineEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("only line"))

	got, err := ReadMultiline(reader, &bytes.Buffer{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "only line" {
		t.Errorf("expected %q, got %q", "only line", got)
	}
}

func TestParseKeywords(t *testing.T) {
	got := ParseKeywords("  Work  home\tCAT ")
	want := []string{"work", "home", "cat"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
