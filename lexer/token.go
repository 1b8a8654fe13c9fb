package lexer

import "fmt"

type TokenKind = string

const (

	// Keywords
	TokenFn     TokenKind = "fn"
	TokenLet    TokenKind = "let"
	TokenTrue   TokenKind = "true"
	TokenFalse  TokenKind = "false"
	TokenIf     TokenKind = "if"
	TokenElse   TokenKind = "else"
	TokenReturn TokenKind = "return"

	// Units
	TokenCurlyBraceOpen  TokenKind = "{"
	TokenCurlyBraceClose TokenKind = "}"
	TokenBraceOpen       TokenKind = "("
	TokenBraceClose      TokenKind = ")"
	TokenComma           TokenKind = ","
	TokenSemicolon       TokenKind = ";"

	// Arithmetic Operators
	TokenPlus      TokenKind = "+"
	TokenMinus     TokenKind = "-"
	TokenMultiply  TokenKind = "*"
	TokenSlash     TokenKind = "/"
	TokenEquals    TokenKind = "=="
	TokenNotEquals TokenKind = "!="
	TokenGreater   TokenKind = ">"
	TokenLess      TokenKind = "<"

	// Bind Operators
	TokenAssign TokenKind = "="

	// Logical Operators
	TokenExclamation TokenKind = "!"

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// number type (used in the lexing phase)
	TokenInt TokenKind = "int"

	// Error
	TokenIllegal TokenKind = "illegal"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type Token struct {
	Text string
	Kind TokenKind
}

// NewToken pairs a kind with the exact text it was scanned from. No
// validation happens here, the caller keeps the pair consistent.
func NewToken(kind TokenKind, text string) Token {
	return Token{
		Kind: kind,
		Text: text,
	}
}

func (t Token) String() string {
	return fmt.Sprintf("Kind:%s, Text:%q", t.Kind, t.Text)
}
