package asm

import "strings"

// ArgKind is the lexical kind a directive argument must have at a given
// position.
type ArgKind int

const (
	// ArgPath expects a quoted string naming a file.
	ArgPath ArgKind = iota
	// ArgLabel expects a bare identifier.
	ArgLabel
)

func (k ArgKind) String() string {
	switch k {
	case ArgPath:
		return "path"
	case ArgLabel:
		return "label"
	}
	return "unknown"
}

// tokenKind classifies a raw directive argument.
type tokenKind int

const (
	tokString tokenKind = iota
	tokIdent
	tokNumber
)

// argToken is one raw directive argument: its text with quotes removed,
// and its lexical kind.
type argToken struct {
	text string
	kind tokenKind
}

// lexArgs classifies each raw argument of a directive. Anything that is
// not a quoted string, an identifier or a numeric literal fails the
// grammar itself.
func lexArgs(parts []string, st statement) ([]argToken, error) {
	toks := make([]argToken, 0, len(parts))
	for _, p := range parts {
		switch {
		case len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' && !strings.Contains(p[1:len(p)-1], `"`):
			toks = append(toks, argToken{text: p[1 : len(p)-1], kind: tokString})
		case reIdent.MatchString(p):
			toks = append(toks, argToken{text: p, kind: tokIdent})
		case reNumber.MatchString(p):
			toks = append(toks, argToken{text: p, kind: tokNumber})
		default:
			return nil, st.lexErr()
		}
	}
	return toks, nil
}

// typeArgs checks a directive invocation against its signature: the arity
// and the ordered per-position kinds. On success it returns the semantic
// string for each position (path, label name). Every directive shares this
// one mechanism instead of duplicating the checks.
func typeArgs(args []argToken, kinds ...ArgKind) ([]string, error) {
	if len(args) < len(kinds) {
		return nil, &MissingArgumentError{Got: len(args), Expected: len(kinds)}
	}
	if len(args) > len(kinds) {
		return nil, &ExtraArgumentError{Expected: len(kinds)}
	}
	out := make([]string, len(kinds))
	for i, k := range kinds {
		tok := args[i]
		switch k {
		case ArgPath:
			if tok.kind != tokString {
				return nil, &ArgumentTypeError{Position: i, Want: k, Token: tok.text}
			}
		case ArgLabel:
			if tok.kind != tokIdent {
				return nil, &ArgumentTypeError{Position: i, Want: k, Token: tok.text}
			}
		}
		out[i] = tok.text
	}
	return out, nil
}
