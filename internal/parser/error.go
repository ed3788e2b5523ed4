package parser

import "github.com/wye-lang/wye/internal/lexer"

// ErrorCode classifies a ParserError for tooling that wants to filter or
// count by category rather than match message strings.
type ErrorCode int

const (
	ErrUnexpectedToken ErrorCode = iota
	ErrExpectedExpression
	ErrExpectedPattern
	ErrExpectedType
	ErrUnterminatedConstruct
)

// ParserError is a single recovered syntax error, positioned by byte
// offset rather than line/column so internal/diag can render it alongside
// lexer and checker diagnostics through one shared mechanism.
type ParserError struct {
	Message string
	Code    ErrorCode
	Pos     lexer.Position
	Length  int
}

func (e *ParserError) Error() string { return e.Message }

func newParserError(code ErrorCode, pos lexer.Position, length int, msg string) *ParserError {
	return &ParserError{Message: msg, Code: code, Pos: pos, Length: length}
}
