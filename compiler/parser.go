package compiler

// Parser is a recursive-descent parser with one token of lookahead.
//
//	program    = statement*
//	statement  = "exit" "(" expression ")" ";"
//	           | "let" IDENT "=" expression ";"
//	expression = INT | IDENT
type Parser struct {
	tokens []Token
	index  int
	arena  *ArenaAllocator
}

func NewParser(tokens []Token, arena *ArenaAllocator) *Parser {
	return &Parser{tokens: tokens, arena: arena}
}

// Parse consumes every token and returns the program. The first grammar
// violation aborts parsing; there is no recovery.
func (p *Parser) Parse() (*AST, error) {
	if _, err := allocateFor[AST](p.arena); err != nil {
		return nil, err
	}
	ast := &AST{Statements: make([]*Statement, 0)}

	for p.peek() != nil {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return nil, newCompileError(SyntaxError, ErrExpected, "could not parse statement, got %s", describeToken(p.peek()))
		}
		ast.Statements = append(ast.Statements, stmt)
	}

	return ast, nil
}

// parseStmt returns a nil statement when the current token cannot start one.
func (p *Parser) parseStmt() (*Statement, error) {
	switch p.peek().Type {
	case TokenExit:
		p.consume()
		if _, err := p.expect(TokenLParen); err != nil {
			return nil, err
		}
		expr, err := p.requireExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}

		if _, err := allocateFor[ExitStatement](p.arena); err != nil {
			return nil, err
		}
		return p.newStatement(&Statement{Exit: &ExitStatement{Expr: expr}})

	case TokenLet:
		p.consume()
		ident, err := p.expect(TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenEq); err != nil {
			return nil, err
		}
		expr, err := p.requireExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}

		if _, err := allocateFor[LetStatement](p.arena); err != nil {
			return nil, err
		}
		return p.newStatement(&Statement{Let: &LetStatement{Name: ident.Value, Expr: expr}})
	}

	return nil, nil
}

func (p *Parser) newStatement(stmt *Statement) (*Statement, error) {
	if _, err := allocateFor[Statement](p.arena); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpr returns a nil expression when the current token is neither an
// integer literal nor an identifier.
func (p *Parser) parseExpr() (*Expression, error) {
	tok := p.peek()
	if tok == nil {
		return nil, nil
	}

	var expr *Expression
	switch tok.Type {
	case TokenIntLiteral:
		expr = intLiteralExpr(p.consume().Value)
	case TokenIdent:
		expr = identExpr(p.consume().Value)
	default:
		return nil, nil
	}

	if _, err := allocateFor[Expression](p.arena); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) requireExpr() (*Expression, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, expectedError("expression", p.peek())
	}
	return expr, nil
}

// expect consumes the current token if it has type tt.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok == nil || tok.Type != tt {
		return Token{}, expectedError(expectedName(tt), tok)
	}
	return p.consume(), nil
}

func expectedName(tt TokenType) string {
	if tt == TokenIdent {
		return "identifier"
	}
	return tokenSpellings[tt]
}

// peek returns the current token, or nil at end of input.
func (p *Parser) peek() *Token {
	if p.index >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.index]
}

func (p *Parser) consume() Token {
	p.index++
	return p.tokens[p.index-1]
}
