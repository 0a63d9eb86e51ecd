package compiler

import (
	"bytes"

	"github.com/alecthomas/participle/lexer"
)

// LexerRegex defines the Nitro token set. The anonymous first group soaks up
// every byte that cannot start a token (whitespace included), so the lexer
// never fails: unknown input is dropped, not reported.
const LexerRegex = `(?s)([^a-zA-Z0-9();=]+)|` +
	`(?P<Ident>[a-zA-Z]+)|` +
	`(?P<Int>[0-9]+)|` +
	`(?P<Punct>[();=])`

var nitroLexer = lexer.Must(lexer.Regexp(LexerRegex))

var keywords = map[string]TokenType{
	"exit": TokenExit,
	"let":  TokenLet,
}

var punctuation = map[string]TokenType{
	"(": TokenLParen,
	")": TokenRParen,
	"=": TokenEq,
	";": TokenSemicolon,
}

// Tokenize scans src left to right and returns the Nitro tokens in source order.
func Tokenize(src []byte) []Token {
	symbols := nitroLexer.Symbols()
	identType, intType, punctType := symbols["Ident"], symbols["Int"], symbols["Punct"]

	lex, err := nitroLexer.Lex(bytes.NewReader(src))
	if err != nil {
		// Reading from a bytes.Reader cannot fail
		panic("ERROR: could not start lexer: " + err.Error())
	}

	tokens := make([]Token, 0)
	for {
		tok, err := lex.Next()
		if err != nil {
			// LexerRegex matches any byte, so this is a broken token definition
			panic("ERROR: lexer rejected input: " + err.Error())
		}

		switch tok.Type {
		case lexer.EOF:
			return tokens

		case identType:
			if kw, ok := keywords[tok.Value]; ok {
				tokens = append(tokens, Token{Pos: tok.Pos, Type: kw})
			} else {
				tokens = append(tokens, Token{Pos: tok.Pos, Type: TokenIdent, Value: tok.Value})
			}

		case intType:
			tokens = append(tokens, Token{Pos: tok.Pos, Type: TokenIntLiteral, Value: tok.Value})

		case punctType:
			tokens = append(tokens, Token{Pos: tok.Pos, Type: punctuation[tok.Value]})
		}
	}
}
