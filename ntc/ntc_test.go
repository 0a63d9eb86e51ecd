package ntc

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/ketan-sonar/nitro-compiler/compiler"
)

func quietOptions() compiler.Options {
	return compiler.Options{Logger: log.New(io.Discard, "", 0)}
}

func writeSource(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, "main.nt")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("Could not write source: %v", err)
	}
	return path
}

func TestCompileNitro(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "let x = 5;\nexit(x);\n")
	output := filepath.Join(dir, "main.s")

	if err := CompileNitro(input, output, quietOptions()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	asm, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}
	if !strings.HasPrefix(string(asm), ".global _start\n") {
		t.Errorf("Unexpected output:\n%s", asm)
	}
	if !strings.Contains(string(asm), "    mov X0, #5\n") {
		t.Errorf("Output lacks literal load:\n%s", asm)
	}
}

func TestCompileNitroWritesNothingOnFailure(t *testing.T) {
	for _, src := range []string{"exit(", "let x = 1; let x = 2;", "exit(y);"} {
		dir := t.TempDir()
		input := writeSource(t, dir, src)
		output := filepath.Join(dir, "main.s")

		if err := CompileNitro(input, output, quietOptions()); err == nil {
			t.Errorf("CompileNitro(%q): expected error", src)
		}
		if _, err := os.Stat(output); !os.IsNotExist(err) {
			t.Errorf("CompileNitro(%q): output file should not exist, stat err = %v", src, err)
		}
	}
}

func TestCompileNitroMissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.nt")

	err := CompileNitro(input, filepath.Join(dir, "out.s"), quietOptions())
	if err == nil {
		t.Fatal("Expected error for missing input")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("Expected not-exist cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not open") {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestCompileNitroUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeSource(t, dir, "exit(0);")

	err := CompileNitro(input, filepath.Join(dir, "no-such-dir", "out.s"), quietOptions())
	if err == nil || !strings.Contains(err.Error(), "could not write to") {
		t.Errorf("Expected write error, got %v", err)
	}
}

func TestCompileNitroRequiresBothPaths(t *testing.T) {
	if err := CompileNitro("", "out.s", quietOptions()); err == nil {
		t.Error("Expected error for empty input path")
	}
}
