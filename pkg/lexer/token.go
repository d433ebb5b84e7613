// Package lexer turns C source text into tokens.
package lexer

import (
	"fmt"
)

// TokenType represents the type of a token. Binary operator nodes in the
// AST reuse these values as their operator tags.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenInvalid

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString
	TokenCharLiteral

	// Operators and punctuation
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenSemicolon    // ;
	TokenColon        // :
	TokenComma        // ,
	TokenDot          // .
	TokenEllipsis     // ...
	TokenArrow        // ->
	TokenQuestion     // ?
	TokenTilde        // ~
	TokenExclamation  // !
	TokenEquals       // =
	TokenDoubleEquals // ==
	TokenNotEquals    // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=
	TokenAmpersand    // &
	TokenDoubleAmp    // &&
	TokenPipe         // |
	TokenDoublePipe   // ||
	TokenCaret        // ^
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenPercent      // %
	TokenPlusPlus     // ++
	TokenMinusMinus   // --
	TokenLeftShift    // <<
	TokenRightShift   // >>

	// Compound assignment
	TokenPlusEquals       // +=
	TokenMinusEquals      // -=
	TokenStarEquals       // *=
	TokenSlashEquals      // /=
	TokenPercentEquals    // %=
	TokenAmpEquals        // &=
	TokenPipeEquals       // |=
	TokenCaretEquals      // ^=
	TokenLeftShiftEquals  // <<=
	TokenRightShiftEquals // >>=

	// Keywords
	TokenKeywordStart // Marker for start of keywords
	TokenAuto
	TokenBreak
	TokenCase
	TokenChar
	TokenConst
	TokenContinue
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtern
	TokenFloat
	TokenFor
	TokenGoto
	TokenIf
	TokenInline
	TokenInt
	TokenLong
	TokenRegister
	TokenRestrict
	TokenReturn
	TokenShort
	TokenSigned
	TokenSizeof
	TokenStatic
	TokenStruct
	TokenSwitch
	TokenTypedef
	TokenUnion
	TokenUnsigned
	TokenVoid
	TokenVolatile
	TokenWhile
	TokenBool
	TokenComplex
	TokenImaginary
	TokenKeywordEnd // Marker for end of keywords
)

// Token is a single lexical unit.
type Token struct {
	Type TokenType
	// Value holds the text of identifiers, string and char literals (quotes
	// and escapes kept as written), the literal text of numbers, and the
	// diagnostic message of invalid tokens. Keywords and punctuators carry none.
	Value string
	// Number is set for TokenNumber only.
	Number *Number
	// Err is set for TokenInvalid only.
	Err error
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	return t.Type > TokenKeywordStart && t.Type < TokenKeywordEnd
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenInvalid:
		return fmt.Sprintf("INVALID:%s", t.Value)
	case TokenIdentifier:
		return fmt.Sprintf("IDENTIFIER:%s", t.Value)
	case TokenNumber:
		if t.Number != nil {
			return fmt.Sprintf("NUMBER:%s (%s, base %d)", t.Value, t.Number.Type, t.Number.Base)
		}
		return fmt.Sprintf("NUMBER:%s", t.Value)
	case TokenString:
		return fmt.Sprintf("STRING:%s", t.Value)
	case TokenCharLiteral:
		return fmt.Sprintf("CHAR:%s", t.Value)
	default:
		if t.IsKeyword() {
			return fmt.Sprintf("KEYWORD:%s", t.Type)
		}
		return fmt.Sprintf("%s:%s", tokenTypeNames[t.Type], t.Type)
	}
}

// String returns the source spelling of punctuators and keywords, and a
// descriptive name for the other token types.
func (tt TokenType) String() string {
	if s, ok := spellings[tt]; ok {
		return s
	}
	if name, ok := tokenTypeNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// tokenTypeNames maps token types to their names for debugging
var tokenTypeNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenInvalid:          "INVALID",
	TokenIdentifier:       "IDENTIFIER",
	TokenNumber:           "NUMBER",
	TokenString:           "STRING",
	TokenCharLiteral:      "CHAR",
	TokenLeftParen:        "LEFT_PAREN",
	TokenRightParen:       "RIGHT_PAREN",
	TokenLeftBrace:        "LEFT_BRACE",
	TokenRightBrace:       "RIGHT_BRACE",
	TokenLeftBracket:      "LEFT_BRACKET",
	TokenRightBracket:     "RIGHT_BRACKET",
	TokenSemicolon:        "SEMICOLON",
	TokenColon:            "COLON",
	TokenComma:            "COMMA",
	TokenDot:              "DOT",
	TokenEllipsis:         "ELLIPSIS",
	TokenArrow:            "ARROW",
	TokenQuestion:         "QUESTION",
	TokenTilde:            "TILDE",
	TokenExclamation:      "EXCLAMATION",
	TokenEquals:           "EQUALS",
	TokenDoubleEquals:     "DOUBLE_EQUALS",
	TokenNotEquals:        "NOT_EQUALS",
	TokenLess:             "LESS",
	TokenGreater:          "GREATER",
	TokenLessEqual:        "LESS_EQUAL",
	TokenGreaterEqual:     "GREATER_EQUAL",
	TokenAmpersand:        "AMPERSAND",
	TokenDoubleAmp:        "DOUBLE_AMP",
	TokenPipe:             "PIPE",
	TokenDoublePipe:       "DOUBLE_PIPE",
	TokenCaret:            "CARET",
	TokenPlus:             "PLUS",
	TokenMinus:            "MINUS",
	TokenStar:             "STAR",
	TokenSlash:            "SLASH",
	TokenPercent:          "PERCENT",
	TokenPlusPlus:         "PLUS_PLUS",
	TokenMinusMinus:       "MINUS_MINUS",
	TokenLeftShift:        "LEFT_SHIFT",
	TokenRightShift:       "RIGHT_SHIFT",
	TokenPlusEquals:       "PLUS_EQUALS",
	TokenMinusEquals:      "MINUS_EQUALS",
	TokenStarEquals:       "STAR_EQUALS",
	TokenSlashEquals:      "SLASH_EQUALS",
	TokenPercentEquals:    "PERCENT_EQUALS",
	TokenAmpEquals:        "AMP_EQUALS",
	TokenPipeEquals:       "PIPE_EQUALS",
	TokenCaretEquals:      "CARET_EQUALS",
	TokenLeftShiftEquals:  "LEFT_SHIFT_EQUALS",
	TokenRightShiftEquals: "RIGHT_SHIFT_EQUALS",
}

var spellings = map[TokenType]string{
	TokenLeftParen:        "(",
	TokenRightParen:       ")",
	TokenLeftBrace:        "{",
	TokenRightBrace:       "}",
	TokenLeftBracket:      "[",
	TokenRightBracket:     "]",
	TokenSemicolon:        ";",
	TokenColon:            ":",
	TokenComma:            ",",
	TokenDot:              ".",
	TokenEllipsis:         "...",
	TokenArrow:            "->",
	TokenQuestion:         "?",
	TokenTilde:            "~",
	TokenExclamation:      "!",
	TokenEquals:           "=",
	TokenDoubleEquals:     "==",
	TokenNotEquals:        "!=",
	TokenLess:             "<",
	TokenGreater:          ">",
	TokenLessEqual:        "<=",
	TokenGreaterEqual:     ">=",
	TokenAmpersand:        "&",
	TokenDoubleAmp:        "&&",
	TokenPipe:             "|",
	TokenDoublePipe:       "||",
	TokenCaret:            "^",
	TokenPlus:             "+",
	TokenMinus:            "-",
	TokenStar:             "*",
	TokenSlash:            "/",
	TokenPercent:          "%",
	TokenPlusPlus:         "++",
	TokenMinusMinus:       "--",
	TokenLeftShift:        "<<",
	TokenRightShift:       ">>",
	TokenPlusEquals:       "+=",
	TokenMinusEquals:      "-=",
	TokenStarEquals:       "*=",
	TokenSlashEquals:      "/=",
	TokenPercentEquals:    "%=",
	TokenAmpEquals:        "&=",
	TokenPipeEquals:       "|=",
	TokenCaretEquals:      "^=",
	TokenLeftShiftEquals:  "<<=",
	TokenRightShiftEquals: ">>=",
}

// Keywords map for quick lookup
var keywords = map[string]TokenType{
	"auto":       TokenAuto,
	"break":      TokenBreak,
	"case":       TokenCase,
	"char":       TokenChar,
	"const":      TokenConst,
	"continue":   TokenContinue,
	"default":    TokenDefault,
	"do":         TokenDo,
	"double":     TokenDouble,
	"else":       TokenElse,
	"enum":       TokenEnum,
	"extern":     TokenExtern,
	"float":      TokenFloat,
	"for":        TokenFor,
	"goto":       TokenGoto,
	"if":         TokenIf,
	"inline":     TokenInline,
	"int":        TokenInt,
	"long":       TokenLong,
	"register":   TokenRegister,
	"restrict":   TokenRestrict,
	"return":     TokenReturn,
	"short":      TokenShort,
	"signed":     TokenSigned,
	"sizeof":     TokenSizeof,
	"static":     TokenStatic,
	"struct":     TokenStruct,
	"switch":     TokenSwitch,
	"typedef":    TokenTypedef,
	"union":      TokenUnion,
	"unsigned":   TokenUnsigned,
	"void":       TokenVoid,
	"volatile":   TokenVolatile,
	"while":      TokenWhile,
	"_Bool":      TokenBool,
	"_Complex":   TokenComplex,
	"_Imaginary": TokenImaginary,
}

func init() {
	for word, tt := range keywords {
		spellings[tt] = word
	}
}

// LookupKeyword returns the keyword type for word, if any.
func LookupKeyword(word string) (TokenType, bool) {
	tt, ok := keywords[word]
	return tt, ok
}
