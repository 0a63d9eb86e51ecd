package compiler

import "fmt"

// push stores reg into a fresh slot below the stack pointer.
func push(reg string) *asmCmd {
	return &asmCmd{
		ins: "str",
		params: []*asmParam{
			rawAsmParam(reg),
			stackAsmParam(fmt.Sprintf("[sp, #-0x%X]!", RegSize)),
		},
		comment: " push",
	}
}

// pop loads the top slot into reg and releases it.
func pop(reg string) *asmCmd {
	return &asmCmd{
		ins: "ldr",
		params: []*asmParam{
			rawAsmParam(reg),
			stackAsmParam("[sp]"),
			immediateAsmParam(fmt.Sprintf("0x%X", RegSize)),
		},
		comment: " pop",
	}
}

func setRegToLiteral(reg, digits string) *asmCmd {
	return &asmCmd{
		ins: "mov",
		params: []*asmParam{
			rawAsmParam(reg),
			immediateAsmParam(digits),
		},
	}
}

// varFromStack copies the variable's slot into reg. stackSize is the
// logical stack depth at the moment of the load.
func varFromStack(v Variable, stackSize int, reg string) *asmCmd {
	return &asmCmd{
		ins: "ldr",
		params: []*asmParam{
			rawAsmParam(reg),
			stackAsmParam(fmt.Sprintf("[sp, #0x%X]", slotOffset(stackSize, v.StackLoc))),
		},
		comment: fmt.Sprintf(" var %s (slot %d)", v.Name, v.StackLoc),
	}
}

// exitSequence terminates the process with the status held in the working register.
func exitSequence() []*asmCmd {
	return []*asmCmd{
		&asmCmd{
			ins: "mov",
			params: []*asmParam{
				rawAsmParam(syscallRegister),
				immediateAsmParam(exitSyscallNumber),
			},
			comment: " exit",
		},
		&asmCmd{
			ins: "svc",
			params: []*asmParam{
				immediateAsmParam(supervisorCallImm),
			},
		},
	}
}

// defaultExit is appended to every program so control never runs off the end.
func defaultExit() []*asmCmd {
	return append([]*asmCmd{setRegToLiteral(workingRegister, "0")}, exitSequence()...)
}
