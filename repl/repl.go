package repl

import (
	"bufio"
	"fmt"
	"io"

	"monkey/lexer"
)

const PROMPT = `>>>`

// Start reads source lines from in and prints the token stream for each one
// to out, until in runs dry.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}
		line := scanner.Text()
		l := lexer.NewLexer(line)
		for _, tok := range l.Tokenize() {
			io.WriteString(out, tok.String())
			io.WriteString(out, "\n")
		}
	}
}
