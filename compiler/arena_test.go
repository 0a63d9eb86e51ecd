package compiler

import (
	"testing"

	"github.com/pkg/errors"
)

func TestArenaOffsetsIncrease(t *testing.T) {
	arena := NewArenaAllocator(64)

	for i, size := range []uintptr{8, 16, 1, 7} {
		prev := arena.Used()
		off, err := arena.Allocate(size)
		if err != nil {
			t.Fatalf("Allocate #%d: unexpected error: %v", i, err)
		}
		if off != prev {
			t.Errorf("Allocate #%d: expected offset %d, got %d", i, prev, off)
		}
		if arena.Used() != prev+int(size) {
			t.Errorf("Allocate #%d: expected used %d, got %d", i, prev+int(size), arena.Used())
		}
	}
}

func TestArenaExhausted(t *testing.T) {
	arena := NewArenaAllocator(16)

	if _, err := arena.Allocate(16); err != nil {
		t.Fatalf("Filling arena exactly should succeed, got %v", err)
	}

	_, err := arena.Allocate(1)
	if !errors.Is(err, ErrArenaExhausted) {
		t.Fatalf("Expected ErrArenaExhausted, got %v", err)
	}

	var cerr *CompileError
	if !errors.As(err, &cerr) || cerr.Type != ResourceError {
		t.Errorf("Expected ResourceError, got %#v", err)
	}
	if arena.Used() != 16 {
		t.Errorf("Failed allocation must not move the offset, used = %d", arena.Used())
	}
}

func TestParseRunsOutOfArena(t *testing.T) {
	tokens := Tokenize([]byte("exit(1);"))

	_, err := NewParser(tokens, NewArenaAllocator(1)).Parse()
	if !errors.Is(err, ErrArenaExhausted) {
		t.Fatalf("Expected ErrArenaExhausted, got %v", err)
	}
}
