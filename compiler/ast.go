package compiler

// AST is a parsed Nitro program: statements in execution order.
type AST struct {
	Statements []*Statement
}

// Statement is a tagged union; exactly one field is set.
type Statement struct {
	Exit *ExitStatement
	Let  *LetStatement
}

type ExitStatement struct {
	Expr *Expression
}

type LetStatement struct {
	Name string
	Expr *Expression
}

// Expression is a tagged union; exactly one field is set. Every expression
// produces exactly one integer.
type Expression struct {
	IntLiteral *string
	Ident      *string
	Binary     *BinaryExpression
}

type Operator int

const (
	OperatorAdd Operator = iota
	OperatorMul
)

func (op Operator) String() string {
	switch op {
	case OperatorAdd:
		return "+"
	case OperatorMul:
		return "*"
	}
	return "?"
}

// BinaryExpression owns both operands. The parser never produces one and
// the generator rejects it; the shape exists for a future arithmetic grammar.
type BinaryExpression struct {
	Operator Operator
	Left     *Expression
	Right    *Expression
}

func intLiteralExpr(digits string) *Expression {
	return &Expression{IntLiteral: &digits}
}

func identExpr(name string) *Expression {
	return &Expression{Ident: &name}
}
