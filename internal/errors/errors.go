// Package errors formats parser and lexer diagnostics with source context:
// the offending line and a caret pointing at the column (spec §4.2).
package errors

import (
	"fmt"
	"strings"

	"github.com/teegre/fralgo-go/internal/lexer"
)

// SyntaxError is a parser-raised diagnostic carrying the offending token's
// display text and position (spec §4.2: "raise with the offending token
// value ... and line number").
type SyntaxError struct {
	Message string
	Source  string
	Pos     lexer.Position
}

// New builds a SyntaxError.
func New(pos lexer.Position, source, format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Source: source, Pos: pos}
}

func (e *SyntaxError) Error() string { return e.Format() }

// Format renders the error with its source line and a caret under the
// offending column.
func (e *SyntaxError) Format() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ligne %d : %s\n", e.Pos.Line, e.Message))
	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return strings.TrimRight(sb.String(), "\n")
	}
	sb.WriteString(line)
	sb.WriteByte('\n')
	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", col-1))
	sb.WriteString("^")
	return sb.String()
}

func (e *SyntaxError) sourceLine(n int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return lines[n-1]
}
