package lexer

var Keywords = map[string]TokenKind{
	"fn":     TokenFn,
	"let":    TokenLet,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// LookupIdentifier classifies a scanned word. Anything outside the keyword
// table is an ordinary identifier, never an error.
func LookupIdentifier(text string) TokenKind {
	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return tokenKind
	}
	return TokenIdentifier
}
