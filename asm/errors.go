package asm

import "fmt"

// LexerError reports source text that does not match the grammar. Parsing
// stops at the first one; there is no resynchronization.
type LexerError struct {
	Line int
	Col  int
	Text string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%d:%d: syntax error near %q", e.Line, e.Col, e.Text)
}

// ImmediateTooLargeError reports a push operand whose minimal encoding
// does not fit the instruction's declared immediate width.
type ImmediateTooLargeError struct {
	Width int // declared immediate width in bytes
	Len   int // minimal encoded length of the operand
}

func (e *ImmediateTooLargeError) Error() string {
	return fmt.Sprintf("immediate needs %d bytes, width is %d", e.Len, e.Width)
}

// ExtraArgumentError reports a directive invoked with more arguments than
// its arity.
type ExtraArgumentError struct {
	Expected int
}

func (e *ExtraArgumentError) Error() string {
	return fmt.Sprintf("too many arguments, expected %d", e.Expected)
}

// MissingArgumentError reports a directive invoked with fewer arguments
// than its arity.
type MissingArgumentError struct {
	Got      int
	Expected int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("got %d arguments, expected %d", e.Got, e.Expected)
}

// ArgumentTypeError reports a directive argument whose lexical form does
// not match the kind required at its position.
type ArgumentTypeError struct {
	Position int // zero-based argument position
	Want     ArgKind
	Token    string
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("argument %d: %q is not a %s", e.Position, e.Token, e.Want)
}
