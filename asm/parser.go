// Package asm parses EVM assembly source into an ordered AST. The parser
// resolves macro directives into typed nodes and normalizes push operands
// into width-exact immediates; label resolution, file inclusion and final
// bytecode emission are left to later stages.
package asm

import (
	"encoding/hex"
	"strings"

	"github.com/ethkit/evasm/ops"
)

// Parse converts assembly source into its AST. The node sequence mirrors
// source order. Parsing stops at the first error; no partial AST is
// returned.
func Parse(src string) ([]Node, error) {
	var prog []Node
	for _, st := range splitStatements(src) {
		n, err := parseStatement(st)
		if err != nil {
			return nil, err
		}
		prog = append(prog, n)
	}
	return prog, nil
}

// parseStatement recognizes one construct: a label definition, a macro
// directive, a push instruction with its operand, or a bare instruction.
func parseStatement(st statement) (Node, error) {
	if m := reLabelDef.FindStringSubmatch(st.text); m != nil {
		return LabelDef{Name: m[1]}, nil
	}
	if strings.HasPrefix(st.text, "%") {
		return parseMacro(st)
	}

	mnemonic := st.text
	var operand string
	if i := strings.IndexAny(st.text, " \t"); i != -1 {
		mnemonic = st.text[:i]
		operand = strings.TrimSpace(st.text[i:])
	}

	spec, ok := ops.Lookup(mnemonic)
	if !ok {
		return nil, st.lexErr()
	}
	if spec.HasImmediate() {
		if operand == "" {
			return nil, st.lexErr()
		}
		return parsePush(spec, operand, st)
	}
	if operand != "" {
		return nil, st.lexErr()
	}
	return Op{Spec: spec}, nil
}

// parsePush normalizes a push operand into an immediate of exactly the
// instruction's declared width, or defers it as a label reference.
func parsePush(spec ops.Specifier, operand string, st statement) (Node, error) {
	width := spec.Size() - 1

	var raw []byte
	var err error
	switch {
	case reBinary.MatchString(operand):
		raw, err = radixImm(operand[2:], 2, width)
	case reOctal.MatchString(operand):
		raw, err = radixImm(operand[2:], 8, width)
	case reHex.MatchString(operand):
		b, _ := hex.DecodeString(operand[2:])
		raw, err = normalize(b, width)
	case reDecimal.MatchString(operand):
		raw, err = radixImm(operand, 10, width)
	case reSelector.MatchString(operand):
		sig := reSelector.FindStringSubmatch(operand)[1]
		raw, err = selectorImm(sig, spec)
	case reIdent.MatchString(operand):
		return Op{Spec: spec, Imm: &Imm{Label: operand}}, nil
	default:
		return nil, st.lexErr()
	}
	if err != nil {
		return nil, err
	}
	return Op{Spec: spec, Imm: &Imm{Bytes: raw}}, nil
}

// parseMacro dispatches a %name(args) invocation. Each directive declares
// its signature; the shared argument typing does the arity and kind
// checks.
func parseMacro(st statement) (Node, error) {
	name, rawArgs, err := macroName(st)
	if err != nil {
		return nil, err
	}
	args, err := lexArgs(splitArgs(rawArgs), st)
	if err != nil {
		return nil, err
	}

	switch name {
	case "import":
		vals, err := typeArgs(args, ArgPath)
		if err != nil {
			return nil, err
		}
		return Import{Path: vals[0]}, nil
	case "include":
		vals, err := typeArgs(args, ArgPath)
		if err != nil {
			return nil, err
		}
		return Include{Path: vals[0]}, nil
	case "include_hex":
		vals, err := typeArgs(args, ArgPath)
		if err != nil {
			return nil, err
		}
		return IncludeHex{Path: vals[0]}, nil
	case "push":
		// Accepts a label only, not a literal. The width is assigned
		// when the label's address is known.
		vals, err := typeArgs(args, ArgLabel)
		if err != nil {
			return nil, err
		}
		return Push{Label: vals[0]}, nil
	default:
		return nil, st.lexErr()
	}
}
