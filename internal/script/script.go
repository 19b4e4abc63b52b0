// Package script reads line-oriented todo command scripts.
//
// One command per line; blank lines and lines starting with '#' are skipped:
//
//	add <text...>
//	rm <id>          (alias: delete)
//	done <id>        (alias: toggle)
//	edit <id>
//	commit <id> [text...]
//	clear
//
// The commit text is everything after the single space following the id, kept
// verbatim, so "commit 3 " commits an empty text.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidID       = errors.New("invalid id")
)

// ParseError ties a parse failure to its 1-based line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads every command from r. It stops at the first bad line.
func Parse(r io.Reader) ([]store.Command, error) {
	var cmds []store.Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		cmd, err := ParseLine(sc.Text())
		if err != nil {
			return nil, &ParseError{Line: n, Err: err}
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// ParseLine parses a single line. Blank and comment lines yield (nil, nil).
func ParseLine(line string) (store.Command, error) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	verb, rest := splitVerb(line)
	verb = strings.ToLower(verb)

	switch verb {
	case "add":
		return store.Add{Text: rest}, nil
	case "clear":
		if strings.TrimSpace(rest) != "" {
			return nil, fmt.Errorf("clear: unexpected argument %q", strings.TrimSpace(rest))
		}
		return store.ClearAll{}, nil
	case "rm", "delete":
		id, err := singleID(verb, rest)
		if err != nil {
			return nil, err
		}
		return store.Delete{ID: id}, nil
	case "done", "toggle":
		id, err := singleID(verb, rest)
		if err != nil {
			return nil, err
		}
		return store.ToggleDone{ID: id}, nil
	case "edit":
		id, err := singleID(verb, rest)
		if err != nil {
			return nil, err
		}
		return store.StartEdit{ID: id}, nil
	case "commit":
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		idStr, text := splitVerb(rest)
		id, err := parseID(verb, idStr)
		if err != nil {
			return nil, err
		}
		return store.CommitEdit{ID: id, Text: text}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
}

// splitVerb cuts s at its first whitespace rune. rest starts right after
// that single rune.
func splitVerb(s string) (verb, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}

func singleID(verb, rest string) (model.ID, error) {
	fields := strings.Fields(rest)
	if len(fields) > 1 {
		return 0, fmt.Errorf("%s: %w: want a single id, got %q", verb, ErrInvalidID, strings.TrimSpace(rest))
	}
	if len(fields) == 0 {
		return parseID(verb, "")
	}
	return parseID(verb, fields[0])
}

func parseID(verb, s string) (model.ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s: %w: id", verb, ErrMissingArgument)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s: %w: %q", verb, ErrInvalidID, s)
	}
	return model.ID(n), nil
}
