package compiler

// RegSize is the width in bytes of one stack slot (one pushed value).
const RegSize = 16

// Every value moves through the working register between emit steps.
const workingRegister = "X0"

// Darwin/arm64 process exit: syscall number in X16, then a supervisor call.
const syscallRegister = "X16"
const exitSyscallNumber = "1"
const supervisorCallImm = "0x80"

// Parameter types only affect debug colouring; every parameter is already
// final assembly text.
const asmParamTypeRaw = 0
const asmParamTypeImmediate = 1
const asmParamTypeStack = 2

type asmCmd struct {
	ins    string
	params []*asmParam

	// For verbose printing: the statement that produced this instruction
	origin string

	// Shown in verbose listings only, never in output asm
	comment string
}

type asmParam struct {
	asmParamType int
	value        string
}

// Variable is a symbol-table entry: the stack slot a name was bound to
// when its let statement was generated.
type Variable struct {
	Name     string
	StackLoc int
}

type asmTransformState struct {
	variableMap map[string]Variable

	// Declaration order, for deterministic listings
	variables []Variable

	// Logical slots permanently occupied by variables
	stackSize int
}

func newAsmTransformState() *asmTransformState {
	return &asmTransformState{
		variableMap: make(map[string]Variable),
		variables:   make([]Variable, 0),
	}
}
