package compiler

import (
	"log"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/logrusorgru/aurora"
)

const CompilerVersion = "0.1.0"

// Options controls logging for one compilation. The zero value is usable.
type Options struct {
	// Dump tokens, AST, arena usage and the annotated listing
	Verbose bool

	Colors aurora.Aurora
	Logger *log.Logger

	// Byte budget for the parser's arena; DefaultArenaSize if zero
	ArenaSize int
}

// Result holds the output of every pipeline stage.
type Result struct {
	Asm       string
	Tokens    []Token
	AST       *AST
	Variables []Variable
}

var tokenDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (opts Options) withDefaults() Options {
	if opts.Colors == nil {
		opts.Colors = aurora.NewAurora(false)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.ArenaSize <= 0 {
		opts.ArenaSize = DefaultArenaSize
	}
	return opts
}

// Compile runs the lexer, parser and generator over src. The first error of
// any stage aborts the run and no assembly is returned.
func Compile(src []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	logger := opts.Logger
	au := opts.Colors

	logger.Println("Tokenizing...")
	tokens := Tokenize(src)

	if opts.Verbose {
		logger.Printf("DEBUG OUTPUT: %d tokens:\n%s", len(tokens), tokenDumper.Sdump(tokens))
	}

	logger.Println("Parsing into AST...")
	arena := NewArenaAllocator(opts.ArenaSize)
	ast, err := NewParser(tokens, arena).Parse()
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		logger.Printf("DEBUG OUTPUT: Arena usage %s of %s\n",
			humanize.Bytes(uint64(arena.Used())), humanize.Bytes(uint64(arena.Cap())))
		logger.Print("DEBUG OUTPUT: AST:\n" + dumpAST(ast, au))
	}

	logger.Println("Generating ASM...")
	gen := NewGenerator(ast)
	asm, err := gen.Generate()
	if err != nil {
		return nil, err
	}

	if opts.Verbose {
		logger.Print(au.Bold("DEBUG OUTPUT: Generated listing:").String() + gen.listing(au))
		for _, v := range gen.Variables() {
			logger.Printf("  %s -> slot %d\n", au.Cyan(v.Name), v.StackLoc)
		}
	}

	return &Result{
		Asm:       asm,
		Tokens:    tokens,
		AST:       ast,
		Variables: gen.Variables(),
	}, nil
}

