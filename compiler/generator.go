package compiler

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

const entryAsm = ".global _start\n.align 2\n\n_start:\n"

const asmIndent = "    "

// Generator translates an AST into assembly in a single forward pass.
type Generator struct {
	ast   *AST
	state *asmTransformState
	asm   []*asmCmd
}

func NewGenerator(ast *AST) *Generator {
	return &Generator{
		ast:   ast,
		state: newAsmTransformState(),
	}
}

// Generate returns the complete assembly text. On error no partial output
// is returned.
func (g *Generator) Generate() (string, error) {
	g.state = newAsmTransformState()
	g.asm = make([]*asmCmd, 0)

	for _, stmt := range g.ast.Statements {
		newAsm, err := asmForStatement(stmt, g.state)
		if err != nil {
			return "", err
		}
		g.asm = append(g.asm, newAsm...)
	}

	// Fallback for sources that do not end in an explicit exit
	exitAsm := defaultExit()
	for _, a := range exitAsm {
		a.origin = "implicit exit(0);"
	}
	g.asm = append(g.asm, exitAsm...)

	var out strings.Builder
	out.WriteString(entryAsm)
	for _, a := range g.asm {
		out.WriteString(asmIndent + a.asmString() + "\n")
	}

	return out.String(), nil
}

// Variables returns the symbol table in declaration order.
func (g *Generator) Variables() []Variable {
	return append([]Variable(nil), g.state.variables...)
}

func (g *Generator) Lookup(name string) (Variable, bool) {
	v, ok := g.state.variableMap[name]
	return v, ok
}

// listing renders the generated instructions grouped by source statement.
func (g *Generator) listing(au aurora.Aurora) string {
	var sb strings.Builder
	prevOrigin := ""
	for _, a := range g.asm {
		if a.origin != prevOrigin {
			fmt.Fprintf(&sb, "\n%s %s\n", au.Cyan("stmt"), a.origin)
			prevOrigin = a.origin
		}
		sb.WriteString("out  " + a.StringWithColors(au) + "\n")
	}
	return sb.String()
}

// GenerateASM is a shorthand for NewGenerator(ast).Generate().
func (ast *AST) GenerateASM() (string, error) {
	return NewGenerator(ast).Generate()
}
