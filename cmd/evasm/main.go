package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethkit/evasm/asm"
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

	src, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	nodes, err := asm.Parse(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", inputFile, diagnostic(err))
		os.Exit(1)
	}

	var text string
	for _, n := range nodes {
		text += n.String() + "\n"
	}

	if outputFile == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Listing written to %s\n", outputFile)
}

// diagnostic expands the parser's structured errors into a precise
// message without re-parsing the source.
func diagnostic(err error) string {
	var (
		lex     *asm.LexerError
		tooBig  *asm.ImmediateTooLargeError
		extra   *asm.ExtraArgumentError
		missing *asm.MissingArgumentError
		argType *asm.ArgumentTypeError
	)
	switch {
	case errors.As(err, &lex):
		return fmt.Sprintf("line %d, column %d: unparseable text %q", lex.Line, lex.Col, lex.Text)
	case errors.As(err, &tooBig):
		return fmt.Sprintf("immediate too large: needs %d bytes, declared width is %d", tooBig.Len, tooBig.Width)
	case errors.As(err, &extra):
		return fmt.Sprintf("directive takes %d argument(s), got more", extra.Expected)
	case errors.As(err, &missing):
		return fmt.Sprintf("directive takes %d argument(s), got %d", missing.Expected, missing.Got)
	case errors.As(err, &argType):
		return fmt.Sprintf("directive argument %d: %q is not a %s", argType.Position+1, argType.Token, argType.Want)
	}
	return err.Error()
}
