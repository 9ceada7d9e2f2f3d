package parser

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

// scanner reads runes from a JSH source with one rune of pushback.
type scanner struct {
	input   string
	length  int
	current int // byte offset of the next rune
	width   int // width of the last rune read
}

func newScanner(input string) *scanner {
	return &scanner{
		input:  input,
		length: len(input),
	}
}

func (s *scanner) nextRune() rune {
	if s.current >= s.length {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.input[s.current:])
	s.width = w
	s.current += w
	return r
}

func (s *scanner) backup() {
	s.current -= s.width
	s.width = 0
}

// escaped reads the rune following a backslash. A trailing backslash yields
// eof and nothing is written.
func (s *scanner) escaped(buf *strings.Builder) {
	if r := s.nextRune(); r != eof {
		buf.WriteRune(r)
	}
}

// scanString reads a quoted string whose opening quote was consumed. \r, \n
// and \t are control characters; any other escaped rune stands for itself.
// Input ending before the closing quote yields what was read so far.
func (s *scanner) scanString(quote rune) string {
	var buf strings.Builder
	for {
		r := s.nextRune()
		switch r {
		case eof, quote:
			return buf.String()
		case '\\':
			switch next := s.nextRune(); next {
			case eof:
			case 'r':
				buf.WriteByte('\r')
			case 'n':
				buf.WriteByte('\n')
			case 't':
				buf.WriteByte('\t')
			default:
				buf.WriteRune(next)
			}
		default:
			buf.WriteRune(r)
		}
	}
}

// scanVariable reads the segments of a variable whose '@' was consumed.
// Separators are consumed, brackets and '#' are left for the caller. The
// last segment is kept even when empty.
func (s *scanner) scanVariable() []string {
	var (
		segs []string
		buf  strings.Builder
	)
	for {
		r := s.nextRune()
		switch {
		case r == eof, isSeparator(r):
			return append(segs, buf.String())
		case isBoundary(r):
			s.backup()
			return append(segs, buf.String())
		case r == '.':
			segs = append(segs, buf.String())
			buf.Reset()
		case r == '\\':
			s.escaped(&buf)
		default:
			buf.WriteRune(r)
		}
	}
}

// skipComment consumes input up to and including the next newline.
func (s *scanner) skipComment() {
	for {
		if r := s.nextRune(); r == eof || r == '\n' {
			return
		}
	}
}
