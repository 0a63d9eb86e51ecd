package compiler

import (
	"fmt"

	"github.com/alecthomas/participle/lexer"
)

type TokenType int

const (
	TokenIntLiteral TokenType = iota
	TokenIdent
	TokenExit
	TokenLet
	TokenLParen
	TokenRParen
	TokenEq
	TokenSemicolon
)

var tokenNames = [...]string{
	TokenIntLiteral: "IntLiteral",
	TokenIdent:      "Ident",
	TokenExit:       "Exit",
	TokenLet:        "Let",
	TokenLParen:     "LParen",
	TokenRParen:     "RParen",
	TokenEq:         "Eq",
	TokenSemicolon:  "Semicolon",
}

// Source spelling of every token type that carries no payload
var tokenSpellings = map[TokenType]string{
	TokenExit:      "exit",
	TokenLet:       "let",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenEq:        "=",
	TokenSemicolon: ";",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit. Value is only set for TokenIntLiteral
// (the digits, verbatim) and TokenIdent (the spelling).
type Token struct {
	Pos lexer.Position

	Type  TokenType
	Value string
}

// Text returns the token as it was written in the source.
func (t Token) Text() string {
	if t.Type == TokenIntLiteral || t.Type == TokenIdent {
		return t.Value
	}
	return tokenSpellings[t.Type]
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-8q %d:%d", t.Type, t.Text(), t.Pos.Line, t.Pos.Column)
}
