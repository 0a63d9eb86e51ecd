package constants

const ProgramName string = "ntc"

const NitroVersion string = "0.1"

const Usage string = ProgramName + " <input.nt> <output.s>"

const Description string = `
ntc compiles a Nitro source file into AArch64 assembly with a single
_start entry point. Assemble and link the output with the platform
toolchain, e.g.:

    as -o out.o out.s && ld -o out out.o -e _start
`
