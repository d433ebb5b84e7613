package lexer

import (
	"fmt"
	"strings"
)

// Tokenizer represents the tokenizer state
type Tokenizer struct {
	src *Source
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(src *Source) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token. It never fails: malformed input produces a
// TokenInvalid whose Err says what went wrong. Once EOF is reached every
// further call returns EOF again.
func (t *Tokenizer) Next() Token {
	if err := t.skip(); err != nil {
		return errorToken(err)
	}

	c := t.src.Read()
	switch c {
	case '[':
		return t.emit(TokenLeftBracket)
	case ']':
		return t.emit(TokenRightBracket)
	case '{':
		return t.emit(TokenLeftBrace)
	case '}':
		return t.emit(TokenRightBrace)
	case '(':
		return t.emit(TokenLeftParen)
	case ')':
		return t.emit(TokenRightParen)
	case '~':
		return t.emit(TokenTilde)
	case ';':
		return t.emit(TokenSemicolon)
	case ':':
		return t.emit(TokenColon)
	case ',':
		return t.emit(TokenComma)
	case '?':
		return t.emit(TokenQuestion)

	case '.':
		if isDigit(t.src.Peek(), 10) {
			return t.scanNumber(c)
		}
		if t.src.Match2('.', '.') {
			return t.emit(TokenEllipsis)
		}
		return t.emit(TokenDot)
	case '-':
		return t.either3('>', TokenArrow, '-', TokenMinusMinus, '=', TokenMinusEquals, TokenMinus)
	case '+':
		return t.either2('+', TokenPlusPlus, '=', TokenPlusEquals, TokenPlus)
	case '&':
		return t.either2('&', TokenDoubleAmp, '=', TokenAmpEquals, TokenAmpersand)
	case '|':
		return t.either2('=', TokenPipeEquals, '|', TokenDoublePipe, TokenPipe)
	case '*':
		return t.either1('=', TokenStarEquals, TokenStar)
	case '^':
		return t.either1('=', TokenCaretEquals, TokenCaret)
	case '/':
		return t.either1('=', TokenSlashEquals, TokenSlash)
	case '%':
		return t.either1('=', TokenPercentEquals, TokenPercent)
	case '=':
		return t.either1('=', TokenDoubleEquals, TokenEquals)
	case '!':
		return t.either1('=', TokenNotEquals, TokenExclamation)
	case '<':
		if t.src.Match2('<', '=') {
			return t.emit(TokenLeftShiftEquals)
		}
		return t.either2('<', TokenLeftShift, '=', TokenLessEqual, TokenLess)
	case '>':
		if t.src.Match2('>', '=') {
			return t.emit(TokenRightShiftEquals)
		}
		return t.either2('>', TokenRightShift, '=', TokenGreaterEqual, TokenGreater)

	case '"':
		return t.scanQuoted('"', TokenString)
	case '\'':
		return t.scanQuoted('\'', TokenCharLiteral)

	case EOF:
		if err := t.src.Err(); err != nil {
			return errorToken(fmt.Errorf("%w: %v", ErrRead, err))
		}
		return Token{Type: TokenEOF}
	}

	switch {
	case isDigit(c, 10):
		return t.scanNumber(c)
	case isNondigit(c):
		return t.scanIdentifier(c)
	}
	return errorToken(fmt.Errorf("%w %q", ErrUnexpectedChar, rune(c)))
}

// Tokenize reads tokens up to and including the first EOF or invalid token.
func (t *Tokenizer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := t.Next()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenInvalid {
			return tokens
		}
	}
}

// HasErrors returns true if any of the tokens is invalid
func HasErrors(tokens []Token) bool {
	return len(GetErrors(tokens)) > 0
}

// GetErrors returns all error tokens
func GetErrors(tokens []Token) []Token {
	var errs []Token
	for _, tok := range tokens {
		if tok.Type == TokenInvalid {
			errs = append(errs, tok)
		}
	}
	return errs
}

func (t *Tokenizer) emit(tt TokenType) Token {
	return Token{Type: tt}
}

func errorToken(err error) Token {
	return Token{Type: TokenInvalid, Value: err.Error(), Err: err}
}

// either1 emits long if the next character is c, short otherwise.
func (t *Tokenizer) either1(c int, long, short TokenType) Token {
	if t.src.Match(c) {
		return t.emit(long)
	}
	return t.emit(short)
}

func (t *Tokenizer) either2(c1 int, t1 TokenType, c2 int, t2 TokenType, short TokenType) Token {
	if t.src.Match(c1) {
		return t.emit(t1)
	}
	return t.either1(c2, t2, short)
}

func (t *Tokenizer) either3(c1 int, t1 TokenType, c2 int, t2 TokenType, c3 int, t3 TokenType, short TokenType) Token {
	if t.src.Match(c1) {
		return t.emit(t1)
	}
	return t.either2(c2, t2, c3, t3, short)
}

// skip discards whitespace and comments.
func (t *Tokenizer) skip() error {
	for {
		c := t.src.Read()
		if isSpace(c) {
			continue
		}
		if c != '/' {
			t.src.Unread(c)
			return nil
		}

		switch {
		case t.src.Match('*'):
			if err := t.skipBlockComment(); err != nil {
				return err
			}
		case t.src.Match('/'):
			for c = t.src.Read(); c != '\n' && c != EOF; c = t.src.Read() {
			}
		default:
			t.src.Unread(c)
			return nil
		}
	}
}

func (t *Tokenizer) skipBlockComment() error {
	for {
		switch t.src.Read() {
		case EOF:
			return ErrUnterminatedComment
		case '*':
			if t.src.Match('/') {
				return nil
			}
		}
	}
}

// scanIdentifier scans an identifier or keyword
func (t *Tokenizer) scanIdentifier(c int) Token {
	var sb strings.Builder
	for ; isDigit(c, 10) || isNondigit(c); c = t.src.Read() {
		sb.WriteByte(byte(c))
	}
	t.src.Unread(c)

	word := sb.String()
	if tt, ok := keywords[word]; ok {
		return Token{Type: tt}
	}
	return Token{Type: TokenIdentifier, Value: word}
}

// scanQuoted scans a string or character literal. Escapes are kept as
// written.
func (t *Tokenizer) scanQuoted(quote int, tt TokenType) Token {
	var sb strings.Builder
	sb.WriteByte(byte(quote))
	for {
		c := t.src.Read()
		switch c {
		case '\n', '\r', EOF:
			return errorToken(fmt.Errorf("%w: %s", ErrUnterminatedLiteral, sb.String()))
		case quote:
			sb.WriteByte(byte(c))
			return Token{Type: tt, Value: sb.String()}
		case '\\':
			sb.WriteByte('\\')
			c = t.src.Read()
			if c == EOF {
				return errorToken(fmt.Errorf("%w: %s", ErrUnterminatedLiteral, sb.String()))
			}
			sb.WriteByte(byte(c))
		default:
			sb.WriteByte(byte(c))
		}
	}
}

// scanNumber scans a numeric literal starting with c, which is a digit or
// a '.' known to be followed by one.
func (t *Tokenizer) scanNumber(c int) Token {
	var text strings.Builder
	if c == '.' {
		return t.scanFloat(&text, 10, c)
	}

	base := 10
	if c == '0' {
		text.WriteByte('0')
		if x := t.src.Read(); x == 'x' || x == 'X' {
			text.WriteByte(byte(x))
			base = 16
		} else {
			t.src.Unread(x)
			base = 8
		}
		c = t.src.Read()
	}

	// Octal runs accept 8 and 9 so that 09.5 still scans as a float.
	run := base
	if base == 8 {
		run = 10
	}
	start := text.Len()
	for ; isDigit(c, run); c = t.src.Read() {
		text.WriteByte(byte(c))
	}
	digits := text.String()[start:]

	switch {
	case c == '.':
		return t.scanFloat(&text, floatBase(base), c)
	case (c == 'e' || c == 'E') && base != 16:
		return t.scanFloat(&text, 10, c)
	case c == 'p' || c == 'P':
		if base != 16 {
			return malformed("binary exponent in decimal literal", text.String()+string(rune(c)))
		}
		return t.scanFloat(&text, 16, c)
	}

	if base == 16 && digits == "" {
		return malformed("hexadecimal literal has no digits", text.String())
	}
	if base == 8 && strings.ContainsAny(digits, "89") {
		return malformed("invalid digit in octal literal", text.String())
	}

	suffix := t.scanIntegerSuffix(c)
	text.WriteString(suffix)
	return Token{
		Type:   TokenNumber,
		Value:  text.String(),
		Number: NewInteger(digits, base, integerSuffix(suffix)),
	}
}

// scanIntegerSuffix reads an optional u/U then an optional l/L or ll/LL,
// starting at the already-read character c.
func (t *Tokenizer) scanIntegerSuffix(c int) string {
	var sb strings.Builder
	if c == 'u' || c == 'U' {
		sb.WriteByte(byte(c))
	} else {
		t.src.Unread(c)
	}

	switch {
	case t.src.Match2('l', 'l'):
		sb.WriteString("ll")
	case t.src.Match2('L', 'L'):
		sb.WriteString("LL")
	case t.src.Match('l'):
		sb.WriteByte('l')
	case t.src.Match('L'):
		sb.WriteByte('L')
	}
	return sb.String()
}

// scanFloat continues a numeric literal at c, which is '.', an exponent
// marker, or for base 16 a 'p'.
func (t *Tokenizer) scanFloat(text *strings.Builder, base int, c int) Token {
	if c == '.' {
		text.WriteByte('.')
		for c = t.src.Read(); isDigit(c, base); c = t.src.Read() {
			text.WriteByte(byte(c))
		}
	}

	exponent := false
	if c == 'e' || c == 'E' || c == 'p' || c == 'P' {
		if base == 10 && (c == 'p' || c == 'P') {
			return malformed("binary exponent in decimal literal", text.String()+string(rune(c)))
		}
		text.WriteByte(byte(c))
		c = t.src.Read()
		if c == '+' || c == '-' {
			text.WriteByte(byte(c))
			c = t.src.Read()
		}
		n := 0
		for ; isDigit(c, 10); c = t.src.Read() {
			text.WriteByte(byte(c))
			n++
		}
		if n == 0 {
			return malformed("exponent has no digits", text.String())
		}
		exponent = true
	}
	if base == 16 && !exponent {
		return malformed("hexadecimal floating literal requires a binary exponent", text.String())
	}

	body := text.String()
	nt := NumberDouble
	switch c {
	case 'f', 'F':
		nt = NumberFloat
		text.WriteByte(byte(c))
	case 'l', 'L':
		nt = NumberLongDouble
		text.WriteByte(byte(c))
	default:
		t.src.Unread(c)
	}

	num, err := NewFloat(body, base, nt)
	if err != nil {
		return errorToken(err)
	}
	return Token{Type: TokenNumber, Value: text.String(), Number: num}
}

func malformed(msg, text string) Token {
	return errorToken(fmt.Errorf("%w: %s: %s", ErrMalformedNumber, msg, text))
}

func floatBase(base int) int {
	if base == 16 {
		return 16
	}
	return 10
}

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\n', '\r':
		return true
	}
	return false
}

func isNondigit(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c, base int) bool {
	if c == EOF {
		return false
	}
	_, ok := digitValue(c, base)
	return ok
}
