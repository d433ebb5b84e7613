package lexer

import (
	"bufio"
	"errors"
	"io"
)

// EOF is returned by Source.Read at end of input.
const EOF = -1

// Source is a character stream with unlimited pushback. Backslash-newline
// pairs are removed before any caller sees them.
type Source struct {
	r       *bufio.Reader
	pending []int // pushback stack, top is last
	err     error
}

// NewSource creates a new character source reading from r
func NewSource(r io.Reader) *Source {
	return &Source{
		r:       bufio.NewReader(r),
		pending: make([]int, 0, 128),
	}
}

// Read returns the next character or EOF.
func (s *Source) Read() int {
	if n := len(s.pending); n > 0 {
		c := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return c
	}

	for {
		c := s.readByte()
		if c != '\\' {
			return c
		}
		if b, err := s.r.Peek(1); err != nil || b[0] != '\n' {
			return c
		}
		// Line splice: drop the newline and keep going.
		s.readByte()
	}
}

// Unread pushes c back so the next Read returns it.
func (s *Source) Unread(c int) {
	s.pending = append(s.pending, c)
}

// Peek returns the next character without consuming it
func (s *Source) Peek() int {
	c := s.Read()
	s.Unread(c)
	return c
}

// Match consumes the next character if it equals c.
func (s *Source) Match(c int) bool {
	d := s.Read()
	if d == c {
		return true
	}
	s.Unread(d)
	return false
}

// Match2 consumes the next two characters if they equal c and d, in order.
func (s *Source) Match2(c, d int) bool {
	x := s.Read()
	y := s.Read()
	if x == c && y == d {
		return true
	}
	s.Unread(y)
	s.Unread(x)
	return false
}

// Err returns the first read error other than io.EOF.
func (s *Source) Err() error {
	return s.err
}

func (s *Source) readByte() int {
	if s.err != nil {
		return EOF
	}
	b, err := s.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return EOF
	}
	return int(b)
}
