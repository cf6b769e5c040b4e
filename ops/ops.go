// Package ops describes the EVM instruction set: opcode values, mnemonic
// lookup and the encoded size of every instruction class.
package ops

import "fmt"

// Specifier describes one instruction class: its opcode value and the
// width of the immediate it carries. Immediate-less instructions have a
// width of zero; the push family carries 1-32 immediate bytes.
type Specifier struct {
	code  byte
	width int
	name  string
}

// Code returns the opcode value.
func (s Specifier) Code() byte { return s.code }

// Name returns the mnemonic.
func (s Specifier) Name() string { return s.name }

// Size returns the total encoded size in bytes: one opcode byte plus the
// immediate width.
func (s Specifier) Size() int { return 1 + s.width }

// HasImmediate reports whether the instruction carries an immediate.
func (s Specifier) HasImmediate() bool { return s.width > 0 }

func (s Specifier) String() string { return s.name }

var (
	byName = make(map[string]Specifier)
	byCode [256]*Specifier
)

func register(code byte, name string, width int) {
	s := Specifier{code: code, width: width, name: name}
	byName[name] = s
	byCode[code] = &s
}

func init() {
	for _, o := range fixed {
		register(o.code, o.name, 0)
	}
	for n := 1; n <= 32; n++ {
		register(byte(0x60+n-1), fmt.Sprintf("push%d", n), n)
	}
	for n := 1; n <= 16; n++ {
		register(byte(0x80+n-1), fmt.Sprintf("dup%d", n), 0)
		register(byte(0x90+n-1), fmt.Sprintf("swap%d", n), 0)
	}
	for n := 0; n <= 4; n++ {
		register(byte(0xa0+n), fmt.Sprintf("log%d", n), 0)
	}
}

// fixed lists every immediate-less instruction without a numeric suffix.
var fixed = []struct {
	code byte
	name string
}{
	{0x00, "stop"},
	{0x01, "add"},
	{0x02, "mul"},
	{0x03, "sub"},
	{0x04, "div"},
	{0x05, "sdiv"},
	{0x06, "mod"},
	{0x07, "smod"},
	{0x08, "addmod"},
	{0x09, "mulmod"},
	{0x0a, "exp"},
	{0x0b, "signextend"},
	{0x10, "lt"},
	{0x11, "gt"},
	{0x12, "slt"},
	{0x13, "sgt"},
	{0x14, "eq"},
	{0x15, "iszero"},
	{0x16, "and"},
	{0x17, "or"},
	{0x18, "xor"},
	{0x19, "not"},
	{0x1a, "byte"},
	{0x1b, "shl"},
	{0x1c, "shr"},
	{0x1d, "sar"},
	{0x20, "keccak256"},
	{0x30, "address"},
	{0x31, "balance"},
	{0x32, "origin"},
	{0x33, "caller"},
	{0x34, "callvalue"},
	{0x35, "calldataload"},
	{0x36, "calldatasize"},
	{0x37, "calldatacopy"},
	{0x38, "codesize"},
	{0x39, "codecopy"},
	{0x3a, "gasprice"},
	{0x3b, "extcodesize"},
	{0x3c, "extcodecopy"},
	{0x3d, "returndatasize"},
	{0x3e, "returndatacopy"},
	{0x3f, "extcodehash"},
	{0x40, "blockhash"},
	{0x41, "coinbase"},
	{0x42, "timestamp"},
	{0x43, "number"},
	{0x44, "difficulty"},
	{0x45, "gaslimit"},
	{0x46, "chainid"},
	{0x47, "selfbalance"},
	{0x48, "basefee"},
	{0x50, "pop"},
	{0x51, "mload"},
	{0x52, "mstore"},
	{0x53, "mstore8"},
	{0x54, "sload"},
	{0x55, "sstore"},
	{0x56, "jump"},
	{0x57, "jumpi"},
	{0x58, "pc"},
	{0x59, "msize"},
	{0x5a, "gas"},
	{0x5b, "jumpdest"},
	{0xf0, "create"},
	{0xf1, "call"},
	{0xf2, "callcode"},
	{0xf3, "return"},
	{0xf4, "delegatecall"},
	{0xf5, "create2"},
	{0xfa, "staticcall"},
	{0xfd, "revert"},
	{0xfe, "invalid"},
	{0xff, "selfdestruct"},
}

// Lookup finds the specifier for a mnemonic. Mnemonics are case-sensitive.
func Lookup(name string) (Specifier, bool) {
	s, ok := byName[name]
	return s, ok
}

// ByCode finds the specifier for an opcode value.
func ByCode(code byte) (Specifier, bool) {
	s := byCode[code]
	if s == nil {
		return Specifier{}, false
	}
	return *s, true
}

// Push returns the specifier for pushN. n must be in 1..32.
func Push(n int) (Specifier, bool) {
	if n < 1 || n > 32 {
		return Specifier{}, false
	}
	return Lookup(fmt.Sprintf("push%d", n))
}
