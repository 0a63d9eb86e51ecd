package compiler

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

func TestCompile(t *testing.T) {
	result, err := Compile([]byte("let x = 5;\nexit(x);\n"), Options{Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.Asm, ".global _start\n.align 2\n\n_start:\n") {
		t.Errorf("Missing entry boilerplate:\n%s", result.Asm)
	}
	if !strings.HasSuffix(result.Asm, trailerAsm) {
		t.Errorf("Missing default exit:\n%s", result.Asm)
	}
	if len(result.Tokens) != 10 {
		t.Errorf("Expected 10 tokens, got %d", len(result.Tokens))
	}
	if len(result.AST.Statements) != 2 {
		t.Errorf("Expected 2 statements, got %d", len(result.AST.Statements))
	}
	if len(result.Variables) != 1 || result.Variables[0].Name != "x" {
		t.Errorf("Unexpected symbol table %v", result.Variables)
	}
}

func TestCompileErrors(t *testing.T) {
	quiet := Options{Logger: log.New(io.Discard, "", 0)}

	tests := []struct {
		src    string
		target error
	}{
		{"exit(10)", ErrExpected},
		{"let x = 1; let x = 2;", ErrRedeclared},
		{"exit(y);", ErrUndeclared},
	}

	for _, tt := range tests {
		result, err := Compile([]byte(tt.src), quiet)
		if !errors.Is(err, tt.target) {
			t.Errorf("Compile(%q): expected %v, got %v", tt.src, tt.target, err)
		}
		if result != nil {
			t.Errorf("Compile(%q): expected no result on error", tt.src)
		}
	}

	opts := quiet
	opts.ArenaSize = 8
	if _, err := Compile([]byte("exit(1);"), opts); !errors.Is(err, ErrArenaExhausted) {
		t.Errorf("Expected ErrArenaExhausted with a tiny arena, got %v", err)
	}
}

func TestCompileVerbose(t *testing.T) {
	var buf bytes.Buffer
	_, err := Compile([]byte("let answer = 42; exit(answer);"), Options{
		Verbose: true,
		Colors:  aurora.NewAurora(false),
		Logger:  log.New(&buf, "", 0),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Tokenizing...",
		"Parsing into AST...",
		"Generating ASM...",
		"Arena usage",
		"LetStatement",
		"\"answer\"",
		"stmt let answer = 42;",
		"ldr X0, [sp, #0x0]   ; var answer (slot 0)",
		"answer -> slot 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Verbose output lacks %q:\n%s", want, out)
		}
	}
}

func TestDumpASTSkipsUnsetFields(t *testing.T) {
	ast, err := parseSource(t, "exit(3);")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	dump := dumpAST(ast, aurora.NewAurora(false))
	if strings.Contains(dump, "Let") || strings.Contains(dump, "Binary") || strings.Contains(dump, "Ident") {
		t.Errorf("Dump shows unset union fields:\n%s", dump)
	}
	if !strings.Contains(dump, "IntLiteral: \"3\"") {
		t.Errorf("Dump lacks literal:\n%s", dump)
	}
}
