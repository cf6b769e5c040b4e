package asm

import (
	"regexp"
	"strings"
)

// statement is one grammar-level construct: the text between statement
// separators, with comments stripped, and the position of its first
// non-blank character.
type statement struct {
	text string
	line int
	col  int
}

func (st statement) lexErr() error {
	return &LexerError{Line: st.line, Col: st.col, Text: st.text}
}

// Statement-level and operand-level token forms. Mnemonics and labels are
// matched case-sensitively.
var (
	reLabelDef = regexp.MustCompile(`^([A-Za-z_][0-9A-Za-z_]*):$`)
	reIdent    = regexp.MustCompile(`^[A-Za-z_][0-9A-Za-z_]*$`)
	reMacro    = regexp.MustCompile(`^%([a-z_]+)\(\s*(.*?)\s*\)$`)
	reBinary   = regexp.MustCompile(`^0b([01]+)$`)
	reOctal    = regexp.MustCompile(`^0o([0-7]+)$`)
	reDecimal  = regexp.MustCompile(`^[0-9]+$`)
	reHex      = regexp.MustCompile(`^0x((?:[0-9a-fA-F]{2})+)$`)
	reSelector = regexp.MustCompile(`^selector\("([^"\s]*)"\)$`)
	reNumber   = regexp.MustCompile(`^(?:0[box])?[0-9a-fA-F]+$`)
)

// splitStatements strips comments and cuts the source into statements.
// Newline and ';' are interchangeable separators; '#' starts a comment
// running to the end of the line. Quoted strings shield both.
func splitStatements(src string) []statement {
	var stmts []statement
	var buf strings.Builder
	line, col := 1, 1
	stLine, stCol := 0, 0
	inQuote := false
	inComment := false

	flush := func() {
		if text := strings.TrimSpace(buf.String()); text != "" {
			stmts = append(stmts, statement{text: text, line: stLine, col: stCol})
		}
		buf.Reset()
		stLine, stCol = 0, 0
	}

	for _, r := range src {
		switch {
		case r == '\n':
			inComment = false
			inQuote = false
			flush()
			line++
			col = 1
			continue
		case inComment:
		case r == '#' && !inQuote:
			inComment = true
		case r == ';' && !inQuote:
			flush()
		default:
			if r == '"' {
				inQuote = !inQuote
			}
			if stLine == 0 && r != ' ' && r != '\t' && r != '\r' {
				stLine, stCol = line, col
			}
			buf.WriteRune(r)
		}
		col++
	}
	flush()
	return stmts
}

// macroName extracts a directive invocation's name and raw argument text.
func macroName(st statement) (name, rawArgs string, err error) {
	m := reMacro.FindStringSubmatch(st.text)
	if m == nil {
		return "", "", st.lexErr()
	}
	return m[1], m[2], nil
}

// splitArgs cuts a directive's argument text on commas outside quotes.
// An empty argument text yields no arguments.
func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var parts []string
	inQuote := false
	last := 0
	for i, r := range raw {
		switch r {
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				parts = append(parts, strings.TrimSpace(raw[last:i]))
				last = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(raw[last:]))
}
