package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"tacgen/pkg/color"
	"tacgen/pkg/interpreter"
	"tacgen/pkg/lexer"
	"tacgen/pkg/parser"
	"tacgen/pkg/parser/codegen"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
)

var (
	ErrSyntax   = errors.New("syntax errors")
	ErrSemantic = errors.New("semantic errors")
)

type Compiler struct {
	Help            bool           // Show help message
	Verbose         bool           // Enable verbose output
	ShouldInterpret bool           // Whether to run the generated code
	NoColor         bool           // Disable colored output
	SourceFile      string         // Path to the source file
	OutputFile      string         // Path to the listing, "-" for stdout
	Limits          codegen.Limits // Resource ceilings
	Stdout          io.Writer      // Destination of reports and program output, os.Stdout when nil
}

// Result is a successfully generated listing
type Result struct {
	Program []codegen.Instruction // instructions in index order
	Listing string                // finalized "<index>: <text>" lines
	Digest  uint64                // xxhash of Listing
}

// Compile reads the source file and compiles it, writing the listing to OutputFile
func (opts *Compiler) Compile() (*Result, error) {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opts.SourceFile, err)
	}

	res, err := opts.CompileSource(string(input))
	if err != nil {
		return nil, err
	}

	if err := opts.writeListing(res.Listing); err != nil {
		return nil, err
	}

	if opts.ShouldInterpret {
		fmt.Fprintln(opts.stdout(), color.GreenText("\n=== Program Output ==="))
		intr := interpreter.NewInterpreter(res.Program, interpreter.WithWriter(opts.stdout()))
		if err := intr.Run(); err != nil {
			return nil, fmt.Errorf("interpretation failed: %w", err)
		}
	}

	return res, nil
}

// CompileSource generates the listing for a program. Diagnostics are printed; none of them
// produce a listing.
func (opts *Compiler) CompileSource(src string) (*Result, error) {
	out := opts.stdout()

	limits := opts.Limits
	if limits == (codegen.Limits{}) {
		limits = codegen.DefaultLimits()
	}

	p := parser.NewParser(lexer.NewLexer(src), codegen.WithLimits(limits))
	if err := p.Parse(); err != nil {
		return nil, fmt.Errorf("code generation aborted: %w", err)
	}

	if syntaxErrors := p.Errors(); len(syntaxErrors) > 0 {
		fmt.Fprintln(out, color.BrightRedText("=== Syntax Errors ==="))
		for _, e := range syntaxErrors {
			fmt.Fprintln(out, e)
		}
		return nil, fmt.Errorf("parsing failed with %d errors: %w", len(syntaxErrors), ErrSyntax)
	}

	if semanticErrors := p.SemanticErrors(); len(semanticErrors) > 0 {
		fmt.Fprintln(out, color.BrightRedText("=== Semantic Errors ==="))
		for _, e := range semanticErrors {
			fmt.Fprintln(out, e)
		}
		return nil, fmt.Errorf("semantic analysis failed with %d errors: %w", len(semanticErrors), ErrSemantic)
	}

	cg := p.Codegen()
	program := cg.Program()

	var listing bytes.Buffer
	if err := cg.Finalize(&listing); err != nil {
		return nil, fmt.Errorf("finalizing listing: %w", err)
	}

	res := &Result{
		Program: program,
		Listing: listing.String(),
		Digest:  xxhash.Sum64(listing.Bytes()),
	}

	log.Debug("generated listing", "instructions", len(program), "digest", fmt.Sprintf("%016x", res.Digest))

	if opts.Verbose {
		opts.report(res, cg.Symbols())
	}

	return res, nil
}

// report prints the colored listing and the declared symbols
func (opts *Compiler) report(res *Result, symbols codegen.SymbolTable) {
	out := opts.stdout()

	fmt.Fprintln(out, color.GreenText("\n=== Generated Three-Address Code ==="))
	if len(res.Program) == 0 {
		fmt.Fprintln(out, color.GrayText("No code generated."))
	}
	for _, ins := range res.Program {
		fmt.Fprintf(out, "%s: %s\n", color.CyanText(fmt.Sprintf("%d", ins.Index)), color.YellowText(ins.Text))
	}
	fmt.Fprintf(out, "%s %016x\n", color.GrayText("digest"), res.Digest)

	if named, ok := symbols.(interface{ Names() []string }); ok {
		fmt.Fprintln(out, color.GreenText("\n=== Symbols ==="))
		for _, name := range named.Names() {
			sym, _ := symbols.Lookup(name)
			if sym.Size > 0 {
				fmt.Fprintf(out, "%s %s[%d]\n", color.BlueText(sym.Type.String()), name, sym.Size)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", color.BlueText(sym.Type.String()), name)
		}
	}
}

// writeListing writes the listing to OutputFile
func (opts *Compiler) writeListing(listing string) error {
	if opts.OutputFile == "-" {
		_, err := io.WriteString(opts.stdout(), listing)
		return err
	}

	if err := os.WriteFile(opts.OutputFile, []byte(listing), 0o644); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	log.Info("Wrote listing", "file", opts.OutputFile)
	return nil
}

func (opts *Compiler) stdout() io.Writer {
	if opts.Stdout == nil {
		return os.Stdout
	}

	return opts.Stdout
}
