package lexer

// Lexer walks an immutable source string one character at a time. A Lexer
// belongs to a single caller, every call to NextToken mutates the cursors.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

func NewLexer(input string) *Lexer {
	lexer := Lexer{
		input: input,
	}
	// pre-load the first character, or the end sentinel for empty input
	lexer.readChar()
	return &lexer
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		// reached end of input, park on the sentinel
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpace()

	var token Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			token = NewToken(TokenEquals, "==")
		} else {
			token = NewToken(TokenAssign, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			token = NewToken(TokenNotEquals, "!=")
		} else {
			token = NewToken(TokenExclamation, "!")
		}
	case '+':
		token = NewToken(TokenPlus, "+")
	case '-':
		token = NewToken(TokenMinus, "-")
	case '/':
		token = NewToken(TokenSlash, "/")
	case '*':
		token = NewToken(TokenMultiply, "*")
	case '<':
		token = NewToken(TokenLess, "<")
	case '>':
		token = NewToken(TokenGreater, ">")
	case '(':
		token = NewToken(TokenBraceOpen, "(")
	case ')':
		token = NewToken(TokenBraceClose, ")")
	case ';':
		token = NewToken(TokenSemicolon, ";")
	case ',':
		token = NewToken(TokenComma, ",")
	case '{':
		token = NewToken(TokenCurlyBraceOpen, "{")
	case '}':
		token = NewToken(TokenCurlyBraceClose, "}")
	case 0:
		// stay parked on the sentinel, repeated calls keep returning EOF
		return NewToken(TokenEOF, "")
	default:
		if isLetter(l.ch) {
			text := l.readIdentifier()
			return NewToken(LookupIdentifier(text), text)
		} else if isDigit(l.ch) {
			return NewToken(TokenInt, l.readNumber())
		}
		token = NewToken(TokenIllegal, string(l.ch))
	}

	l.readChar()
	return token
}

// Tokenize drains the lexer into a slice, ending with the EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// readIdentifier consumes a maximal run of letters and underscores. Digits
// never continue an identifier in this language.
func (l *Lexer) readIdentifier() string {
	startPos := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[startPos:l.position]
}

func (l *Lexer) readNumber() string {
	startPos := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[startPos:l.position]
}

func (l *Lexer) skipWhiteSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}
