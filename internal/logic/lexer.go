package logic

import "strings"

// Lexer is responsible for scanning a source expression and producing tokens.
type Lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize scans a source expression into its token sequence. It is a
// convenience wrapper around NewLexer(input).Tokenize().
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize processes the entire input and produces the list of tokens.
// The returned sequence always ends with a TokenEOF token; empty input
// yields only that. A *SyntaxError is returned for an unrecognized
// character or a malformed variable name.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case c == '&':
			l.addToken(TokenAnd, "&", currentPos)
			l.position++

		case c == '|':
			l.addToken(TokenOr, "|", currentPos)
			l.position++

		case c == '!':
			l.addToken(TokenNot, "!", currentPos)
			l.position++

		case c == '-':
			// '-' only appears as the start of '->'
			if l.position+1 < len(l.input) && l.input[l.position+1] == '>' {
				l.addToken(TokenImplies, "->", currentPos)
				l.position += 2
				continue
			}
			return nil, syntaxErrorf(currentPos, "unexpected character %q", c)

		case c == '<':
			// '<' only appears as the start of '<->'
			if strings.HasPrefix(l.input[l.position:], "<->") {
				l.addToken(TokenIff, "<->", currentPos)
				l.position += 3
				continue
			}
			return nil, syntaxErrorf(currentPos, "unexpected character %q", c)

		case isSpace(c):
			l.position++

		case isLetter(c):
			l.lexWord(currentPos)

		case isDigit(c) || c == '_':
			// words are scanned to the end so the error names the whole token
			return nil, syntaxErrorf(currentPos, "invalid variable name %q", l.scanWord())

		default:
			return nil, syntaxErrorf(currentPos, "unrecognized character %q", c)
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexWord scans a letter-led run of word characters and classifies it as a
// TRUE/FALSE literal or a variable name.
func (l *Lexer) lexWord(startPos int) {
	word := l.scanWord()
	switch {
	case strings.EqualFold(word, "true"):
		l.addToken(TokenTrue, word, startPos)
	case strings.EqualFold(word, "false"):
		l.addToken(TokenFalse, word, startPos)
	default:
		l.addToken(TokenVariable, word, startPos)
	}
}

// scanWord consumes consecutive word characters starting at the current
// position and returns them.
func (l *Lexer) scanWord() string {
	start := l.position
	for l.position < len(l.input) && isWordChar(l.input[l.position]) {
		l.position++
	}
	return l.input[start:l.position]
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:  tokenType,
		Value: value,
		Pos:   pos,
	})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
