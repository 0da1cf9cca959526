package postable

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single table line when reading.
const maxLineSize = 1 << 20

// Read decodes a table from r. Only read errors are returned; malformed rows
// are handled by [Decode].
func Read(r io.Reader) (*Cache, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}

	return Decode(lines), nil
}

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	return lines, nil
}

// Marshal renders the cache as file content: every line newline-terminated,
// tabs inside cells expanded to a single space.
func Marshal(c *Cache) []byte {
	return []byte(Join(Encode(c)))
}

// Join turns encoded lines into file content.
func Join(lines []string) string {
	var b strings.Builder

	for _, line := range lines {
		b.WriteString(strings.ReplaceAll(line, "\t", " "))
		b.WriteByte('\n')
	}

	return b.String()
}
