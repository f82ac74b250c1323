// Package metadata parses the structured header at the top of a markdown
// post: a `# Title` line, a `*Mon D, YYYY*` publication date, and an
// optional `*Draft*` marker. Everything after the header is left untouched
// for the markdown renderer.
package metadata

import (
	"bytes"
	"fmt"

	"github.com/mdpress/mdpress/types"
)

var months = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4,
	"May": 5, "Jun": 6, "Jul": 7, "Aug": 8,
	"Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

var draftMarker = []byte("*Draft*")

// Parse reads the header from the raw text of one post. On success it
// returns the normalized metadata and the remaining body. A malformed or
// missing title or date rejects the whole file; the draft marker is
// optional and never an error.
func Parse(src []byte) (types.Metadata, []byte, error) {
	s := &scanner{src: src}
	title, err := s.title()
	if err != nil {
		return types.Metadata{}, nil, err
	}
	created, err := s.created()
	if err != nil {
		return types.Metadata{}, nil, err
	}
	draft := s.draft()
	return types.Metadata{Title: title, Created: created, Draft: draft}, s.src[s.pos:], nil
}

type scanner struct {
	src []byte
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func (s *scanner) expect(b byte) error {
	if s.pos >= len(s.src) {
		return fmt.Errorf("expected %q, got end of input", b)
	}
	if s.src[s.pos] != b {
		return fmt.Errorf("expected %q, got %q", b, s.src[s.pos])
	}
	s.pos++
	return nil
}

// title matches `# <text>` up to the end of the line.
func (s *scanner) title() (string, error) {
	s.skipSpace()
	if err := s.expect('#'); err != nil {
		return "", fmt.Errorf("no title marker: %s", err)
	}
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	title := string(bytes.TrimSpace(s.src[start:s.pos]))
	if s.pos < len(s.src) {
		s.pos++ // the newline belongs to the title line
	}
	if title == "" {
		return "", fmt.Errorf("title is empty")
	}
	return title, nil
}

// created matches `*Mon D, YYYY*` and normalizes it to YYYY-MM-DD.
func (s *scanner) created() (string, error) {
	s.skipSpace()
	if err := s.expect('*'); err != nil {
		return "", fmt.Errorf("no date line: %s", err)
	}
	month, err := s.month()
	if err != nil {
		return "", err
	}
	if err := s.expect(' '); err != nil {
		return "", fmt.Errorf("malformed date: %s", err)
	}
	day, err := s.day()
	if err != nil {
		return "", err
	}
	if err := s.expect(' '); err != nil {
		return "", fmt.Errorf("malformed date: %s", err)
	}
	year, err := s.year()
	if err != nil {
		return "", err
	}
	if err := s.expect('*'); err != nil {
		return "", fmt.Errorf("unterminated date: %s", err)
	}
	return fmt.Sprintf("%s-%02d-%02d", year, month, day), nil
}

// month matches exactly 3 characters against the English month table.
// Anything not in the table fails the whole parse, there is no default.
func (s *scanner) month() (int, error) {
	if s.pos+3 > len(s.src) {
		return 0, fmt.Errorf("truncated month abbreviation")
	}
	name := string(s.src[s.pos : s.pos+3])
	m, ok := months[name]
	if !ok {
		return 0, fmt.Errorf("unknown month %q", name)
	}
	s.pos += 3
	return m, nil
}

// day matches either a single digit or two digits, in each case followed
// directly by a comma. Trying the 1-digit form first is safe because it
// only commits when the comma is there, so `13,` always takes the 2-digit
// alternative.
func (s *scanner) day() (int, error) {
	rest := s.src[s.pos:]
	if len(rest) >= 2 && isDigit(rest[0]) && rest[1] == ',' {
		s.pos += 2
		return int(rest[0] - '0'), nil
	}
	if len(rest) >= 3 && isDigit(rest[0]) && isDigit(rest[1]) && rest[2] == ',' {
		s.pos += 3
		return int(rest[0]-'0')*10 + int(rest[1]-'0'), nil
	}
	return 0, fmt.Errorf("day must be 1 or 2 digits followed by a comma")
}

// year matches exactly 4 digits.
func (s *scanner) year() (string, error) {
	if s.pos+4 > len(s.src) {
		return "", fmt.Errorf("truncated year")
	}
	for _, b := range s.src[s.pos : s.pos+4] {
		if !isDigit(b) {
			return "", fmt.Errorf("year must be 4 digits")
		}
	}
	year := string(s.src[s.pos : s.pos+4])
	s.pos += 4
	return year, nil
}

// draft is the only optional production: if `*Draft*` does not follow the
// date the scanner rewinds and the text stays part of the body.
func (s *scanner) draft() bool {
	save := s.pos
	s.skipSpace()
	if bytes.HasPrefix(s.src[s.pos:], draftMarker) {
		s.pos += len(draftMarker)
		return true
	}
	s.pos = save
	return false
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
