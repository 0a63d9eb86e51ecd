package compiler

import "fmt"

// asmForExpression leaves the expression's value pushed on the machine stack.
// The logical stack size is not changed here; only let statements keep
// their slot.
func asmForExpression(expr *Expression, state *asmTransformState) ([]*asmCmd, error) {
	switch {
	case expr.IntLiteral != nil:
		return []*asmCmd{
			setRegToLiteral(workingRegister, *expr.IntLiteral),
			push(workingRegister),
		}, nil

	case expr.Ident != nil:
		v, err := getVariable(*expr.Ident, state)
		if err != nil {
			return nil, err
		}

		// Copy, not move: the variable's own slot stays put
		return []*asmCmd{
			varFromStack(v, state.stackSize, workingRegister),
			push(workingRegister),
		}, nil

	case expr.Binary != nil:
		return nil, newCompileError(UnsupportedError, ErrUnsupported, "binary expression `%s` cannot be generated", expr.Binary.Operator)
	}

	return nil, newCompileError(UnsupportedError, ErrUnsupported, "empty expression")
}

func asmForStatement(stmt *Statement, state *asmTransformState) ([]*asmCmd, error) {
	newAsm := make([]*asmCmd, 0)

	switch node := stmt.node().(type) {

	case *ExitStatement:
		exprAsm, err := asmForExpression(node.Expr, state)
		if err != nil {
			return nil, err
		}
		newAsm = append(newAsm, exprAsm...)
		newAsm = append(newAsm, pop(workingRegister))
		newAsm = append(newAsm, exitSequence()...)

	case *LetStatement:
		if err := ensureUndeclared(node.Name, state); err != nil {
			return nil, err
		}

		// The initializer's push is the variable's permanent storage
		exprAsm, err := asmForExpression(node.Expr, state)
		if err != nil {
			return nil, err
		}
		newAsm = append(newAsm, exprAsm...)

		addVariable(node.Name, state)

	default:
		return nil, newCompileError(UnsupportedError, ErrUnsupported, "empty statement")
	}

	origin := stmt.String()
	for i := range newAsm {
		newAsm[i].origin = origin
	}

	return newAsm, nil
}

func (s *Statement) node() interface{} {
	switch {
	case s.Exit != nil:
		return s.Exit
	case s.Let != nil:
		return s.Let
	}
	return nil
}

func (s *Statement) String() string {
	switch node := s.node().(type) {
	case *ExitStatement:
		return fmt.Sprintf("exit(%s);", node.Expr)
	case *LetStatement:
		return fmt.Sprintf("let %s = %s;", node.Name, node.Expr)
	}
	return "<empty>"
}

func (e *Expression) String() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.IntLiteral != nil:
		return *e.IntLiteral
	case e.Ident != nil:
		return *e.Ident
	case e.Binary != nil:
		return fmt.Sprintf("(%s %s %s)", e.Binary.Left, e.Binary.Operator, e.Binary.Right)
	}
	return "<empty>"
}
