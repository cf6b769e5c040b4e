package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/ethkit/evasm/dasm"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <inputfile> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	inputFile := os.Args[1]
	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	code, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	// Accept either raw bytecode or a hex dump.
	if decoded, ok := fromHexDump(code); ok {
		code = decoded
	}

	text := dasm.Disassemble(code)

	if outputFile == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}

// fromHexDump decodes files that contain bytecode as hex text, with an
// optional 0x prefix and any amount of whitespace.
func fromHexDump(data []byte) ([]byte, bool) {
	s := strings.Join(strings.Fields(string(data)), "")
	s = strings.TrimPrefix(s, "0x")
	if s == "" || len(s)%2 != 0 {
		return nil, false
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return decoded, true
}
