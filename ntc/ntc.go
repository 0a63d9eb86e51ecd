package ntc

import (
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/ketan-sonar/nitro-compiler/compiler"
)

// CompileNitro compiles inputFile and writes the assembly to outputFile.
// Nothing is written when compilation fails.
func CompileNitro(inputFile, outputFile string, opts compiler.Options) error {
	if inputFile == "" || outputFile == "" {
		return errors.New("you need to specify an input and output file combination")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Println("Starting compilation of " + inputFile)

	src, err := os.ReadFile(inputFile)
	if err != nil {
		return errors.Wrapf(err, "could not open `%s`", inputFile)
	}

	result, err := compiler.Compile(src, opts)
	if err != nil {
		return err
	}

	asm := []byte(result.Asm)
	if err := os.WriteFile(outputFile, asm, 0644); err != nil {
		return errors.Wrapf(err, "could not write to `%s`", outputFile)
	}

	logger.Printf("Compilation completed, %s written\n", humanize.Bytes(uint64(len(asm))))
	return nil
}
