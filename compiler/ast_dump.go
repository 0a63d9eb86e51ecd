package compiler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/logrusorgru/aurora"
)

// dumpAST renders the tree one node per line, skipping unset union fields.
func dumpAST(ast *AST, au aurora.Aurora) string {
	var sb strings.Builder

	walkInterface(reflect.ValueOf(ast), "AST", 0, func(val reflect.Value, name string, depth int) {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(au.Cyan(name).String())

		switch val.Kind() {
		case reflect.Struct:
			sb.WriteString(" " + au.Blue(val.Type().Name()).String())
		case reflect.Slice:
			fmt.Fprintf(&sb, " (%d)", val.Len())
		case reflect.String:
			sb.WriteString(": " + au.Red(fmt.Sprintf("%q", val.String())).String())
		default:
			sb.WriteString(": " + fmt.Sprint(val.Interface()))
		}
		sb.WriteString("\n")
	})

	return sb.String()
}

// walkInterface visits val and, depth first, every exported field and
// slice element below it. Nil pointers and interfaces are not visited.
func walkInterface(val reflect.Value, name string, depth int, visit func(reflect.Value, string, int)) {
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}

	visit(val, name, depth)

	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			if !typ.Field(i).IsExported() {
				continue
			}
			walkInterface(val.Field(i), typ.Field(i).Name, depth+1, visit)
		}

	case reflect.Slice:
		for j := 0; j < val.Len(); j++ {
			walkInterface(val.Index(j), fmt.Sprintf("%s[%d]", name, j), depth+1, visit)
		}
	}
}
