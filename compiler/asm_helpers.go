package compiler

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

func rawAsmParam(content string) *asmParam {
	return &asmParam{
		asmParamType: asmParamTypeRaw,
		value:        content,
	}
}

func immediateAsmParam(content string) *asmParam {
	return &asmParam{
		asmParamType: asmParamTypeImmediate,
		value:        "#" + content,
	}
}

func stackAsmParam(content string) *asmParam {
	return &asmParam{
		asmParamType: asmParamTypeStack,
		value:        content,
	}
}

// slotOffset is the byte distance from the current stack pointer to the
// slot declared at stackLoc, with stackSize slots live. stackLoc < stackSize.
func slotOffset(stackSize, stackLoc int) int {
	return (stackSize - stackLoc - 1) * RegSize
}

func ensureUndeclared(name string, state *asmTransformState) error {
	if _, exists := state.variableMap[name]; exists {
		return newCompileError(ReferenceError, ErrRedeclared, "identifier `%s` already exists", name)
	}
	return nil
}

// addVariable binds name to the next logical slot. The caller has already
// pushed the value that lives there.
func addVariable(name string, state *asmTransformState) Variable {
	v := Variable{
		Name:     name,
		StackLoc: state.stackSize,
	}
	state.variableMap[name] = v
	state.variables = append(state.variables, v)
	state.stackSize++

	return v
}

func getVariable(name string, state *asmTransformState) (Variable, error) {
	v, ok := state.variableMap[name]
	if !ok {
		return Variable{}, newCompileError(ReferenceError, ErrUndeclared, "identifier `%s` not found", name)
	}
	return v, nil
}

// Generates valid assembly from an asmCmd
func (cmd *asmCmd) asmString() string {
	retval := cmd.ins

	if len(cmd.params) > 0 {
		values := make([]string, len(cmd.params))
		for i, p := range cmd.params {
			values[i] = p.value
		}
		retval += " " + strings.Join(values, ", ")
	}

	return retval
}

// Debug information for an asmCmd in pre-formatted string form
func (cmd *asmCmd) String() string {
	return cmd.StringWithColors(aurora.NewAurora(false))
}

func (cmd *asmCmd) StringWithColors(au aurora.Aurora) string {
	retval := au.Blue(cmd.ins).String()

	for i, p := range cmd.params {
		var formatted string
		switch p.asmParamType {
		case asmParamTypeImmediate:
			formatted = au.Red(p.value).String()
		case asmParamTypeStack:
			formatted = au.Magenta(p.value).String()
		default:
			formatted = p.value
		}

		if i == 0 {
			retval += " " + formatted
		} else {
			retval += ", " + formatted
		}
	}

	if cmd.comment != "" {
		retval += au.Green(fmt.Sprintf("   ;%s", cmd.comment)).String()
	}

	return retval
}
