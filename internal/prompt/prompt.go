// ABOUTME: Line-oriented interactive input for the add command.
// ABOUTME: Reads single lines, blank-line-terminated blocks, and keyword lists.

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadLine writes label to w and reads one line. A final line without a
// trailing newline is accepted.
func ReadLine(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadMultiline writes label to w and reads lines until an empty line or EOF.
// The collected text is trimmed and joined with '\n'.
func ReadMultiline(reader *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// ParseKeywords splits raw on whitespace and lowercases each keyword.
func ParseKeywords(raw string) []string {
	fields := strings.Fields(raw)
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
