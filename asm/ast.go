package asm

import (
	"encoding/hex"
	"fmt"

	"github.com/ethkit/evasm/ops"
)

// Node represents one parsed element from the assembly source. The node
// sequence returned by Parse mirrors source order.
type Node interface {
	fmt.Stringer
	node()
}

// Imm is a push immediate: either resolved bytes of exactly the declared
// width, or a label reference to be substituted by the linker. Exactly one
// of the two fields is set.
type Imm struct {
	Bytes []byte
	Label string
}

func (i Imm) String() string {
	if i.Label != "" {
		return i.Label
	}
	return "0x" + hex.EncodeToString(i.Bytes)
}

// Op is a concrete instruction, optionally carrying an immediate.
type Op struct {
	Spec ops.Specifier
	Imm  *Imm
}

func (o Op) node() {}

func (o Op) String() string {
	if o.Imm == nil {
		return o.Spec.Name()
	}
	return fmt.Sprintf("%s %s", o.Spec.Name(), o.Imm)
}

// LabelDef binds a name to the bytecode offset of the next instruction.
// Resolution is the linker's job; the parser records the name verbatim.
type LabelDef struct {
	Name string
}

func (l LabelDef) node() {}

func (l LabelDef) String() string { return l.Name + ":" }

// Push is the %push macro form: a push whose width is chosen by a later
// stage and whose operand is always a label.
type Push struct {
	Label string
}

func (p Push) node() {}

func (p Push) String() string { return fmt.Sprintf("%%push(%s)", p.Label) }

// Import marks a point where another assembled program is linked in. The
// parser only records the path.
type Import struct {
	Path string
}

func (i Import) node() {}

func (i Import) String() string { return fmt.Sprintf("%%import(%q)", i.Path) }

// Include marks a point where another source file is spliced in as text.
type Include struct {
	Path string
}

func (i Include) node() {}

func (i Include) String() string { return fmt.Sprintf("%%include(%q)", i.Path) }

// IncludeHex marks a point where a hex file is spliced in as raw bytes.
type IncludeHex struct {
	Path string
}

func (i IncludeHex) node() {}

func (i IncludeHex) String() string { return fmt.Sprintf("%%include_hex(%q)", i.Path) }
