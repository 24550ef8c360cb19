package scpi

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Cursor tracks the remaining unconsumed portion of a message being decoded.
// Every successful read advances the cursor exactly past the consumed span;
// a failed read leaves it untouched. Protocol text is ASCII, so all offsets
// are byte offsets.
//
// A cursor is owned by a single decode operation and must not be shared
// across goroutines.
type Cursor struct {
	rest string
}

// NewCursor creates a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{rest: input}
}

// Rest returns the remaining unconsumed input.
func (c *Cursor) Rest() string {
	return c.rest
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.rest)
}

// MatchLiteral consumes literal from the front of the remaining input.
// The cursor is unchanged on failure.
func (c *Cursor) MatchLiteral(literal string) error {
	rest, ok := strings.CutPrefix(c.rest, literal)
	if !ok {
		return newDecodeError(fmt.Sprintf("literal %q", literal), c.rest)
	}
	c.rest = rest
	return nil
}

// ReadUntil returns the text before the first occurrence of delim and
// advances past the delimiter, discarding it. Fails with the cursor
// unchanged if delim is absent.
func (c *Cursor) ReadUntil(delim rune) (string, error) {
	i := strings.IndexRune(c.rest, delim)
	if i < 0 {
		return "", newDecodeError(fmt.Sprintf("delimiter %q", delim), c.rest)
	}
	head := c.rest[:i]
	c.rest = c.rest[i+utf8.RuneLen(delim):]
	return head, nil
}

// ReadWhile returns the longest prefix whose runes all satisfy pred and
// advances past it. Never fails; the prefix may be empty.
func (c *Cursor) ReadWhile(pred func(rune) bool) string {
	end := len(c.rest)
	for i, r := range c.rest {
		if !pred(r) {
			end = i
			break
		}
	}
	head := c.rest[:end]
	c.rest = c.rest[end:]
	return head
}

// ReadPrefix returns the longest prefix matching re, anchored at the start
// of the remaining input, and advances past it. A pattern that does not
// match at the start yields an empty result with the cursor unchanged;
// ReadPrefix never fails.
func (c *Cursor) ReadPrefix(re *regexp.Regexp) string {
	n := prefixLen(re, c.rest)
	head := c.rest[:n]
	c.rest = c.rest[n:]
	return head
}

// prefixLen reports the length of the longest match of re anchored at the
// start of input, or 0 if re does not match there.
func prefixLen(re *regexp.Regexp, input string) int {
	loc := re.FindStringIndex(input)
	if loc == nil || loc[0] != 0 {
		return 0
	}
	return loc[1]
}

// ReadExact returns exactly n bytes and advances past them. Fails with the
// cursor unchanged if fewer than n bytes remain.
func (c *Cursor) ReadExact(n int) (string, error) {
	if n > len(c.rest) {
		return "", newDecodeError(fmt.Sprintf("%d more characters", n), c.rest)
	}
	head := c.rest[:n]
	c.rest = c.rest[n:]
	return head, nil
}

// ReadAll consumes and returns the entire remaining input, leaving the
// cursor empty. Always succeeds.
func (c *Cursor) ReadAll() string {
	head := c.rest
	c.rest = ""
	return head
}

// CheckEmpty succeeds only if the cursor has no remaining input. The error
// describes the leftover content and matches ErrTrailing under errors.Is.
func (c *Cursor) CheckEmpty() error {
	if len(c.rest) > 0 {
		return newTrailingError(c.rest)
	}
	return nil
}
