// Package dasm renders EVM bytecode as assembly text. It performs a
// linear sweep over the code using the same instruction table the parser
// builds its AST from, so a listing re-assembles to the original bytes.
package dasm

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethkit/evasm/ops"
)

// Instruction is one decoded instruction at a specific bytecode offset.
// Data holds raw bytes when the region is not a decodable instruction: an
// unassigned opcode value, or a push whose immediate is cut off by the end
// of the code.
type Instruction struct {
	Offset int
	Spec   ops.Specifier
	Imm    []byte
	Data   []byte
}

// Text renders the instruction the way the assembler accepts it. Raw data
// is rendered as a comment so a listing stays valid source.
func (i Instruction) Text() string {
	if len(i.Data) > 0 {
		return fmt.Sprintf("# data: 0x%s", hex.EncodeToString(i.Data))
	}
	if i.Spec.HasImmediate() {
		return fmt.Sprintf("%s 0x%s", i.Spec.Name(), hex.EncodeToString(i.Imm))
	}
	return i.Spec.Name()
}

// Sweep decodes code front to back into instructions.
func Sweep(code []byte) []Instruction {
	var insts []Instruction
	for pc := 0; pc < len(code); {
		spec, ok := ops.ByCode(code[pc])
		if !ok {
			insts = append(insts, Instruction{Offset: pc, Data: code[pc : pc+1]})
			pc++
			continue
		}
		width := spec.Size() - 1
		if pc+1+width > len(code) {
			// truncated immediate, keep the tail as data
			insts = append(insts, Instruction{Offset: pc, Data: code[pc:]})
			break
		}
		inst := Instruction{Offset: pc, Spec: spec}
		if width > 0 {
			inst.Imm = code[pc+1 : pc+1+width]
		}
		insts = append(insts, inst)
		pc += 1 + width
	}
	return insts
}

// Disassemble produces a line-per-instruction listing of code.
func Disassemble(code []byte) string {
	var out strings.Builder
	for _, inst := range Sweep(code) {
		out.WriteString(inst.Text())
		out.WriteByte('\n')
	}
	return out.String()
}
