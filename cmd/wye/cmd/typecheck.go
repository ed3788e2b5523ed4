package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/wye-lang/wye/internal/diag"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/parser"
	"github.com/wye-lang/wye/internal/typecheck"
	"github.com/wye-lang/wye/internal/types"
)

var typecheckCmd = &cobra.Command{
	Use:     "typecheck [file]",
	Short:   "Type-check a Wye source file",
	Long:    `Lex, parse, and type-check a Wye source file; print the inferred type of every top-level binding, or the type errors found.`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runTypecheck,
	Aliases: []string{"tc"},
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

func runTypecheck(cmd *cobra.Command, args []string) error {
	input, file, err := readTypecheckInput(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if lexErrs, parseErrs := l.Errors(), p.Errors(); len(lexErrs) > 0 || len(parseErrs) > 0 {
		var diags []diag.Diagnostic
		diags = append(diags, diag.FromLexerErrors(lexErrs, input, file)...)
		diags = append(diags, diag.FromParserErrors(parseErrs, input, file)...)
		fmt.Fprint(os.Stderr, diag.Render(diags, false))
		return fmt.Errorf("parsing failed with %d error(s)", len(diags))
	}

	tc := typecheck.TypeCheckProgram(program)
	if !tc.Succeeded() {
		diags := diag.FromTypeErrors(tc.TypeErrors, input, file)
		fmt.Fprint(os.Stderr, diag.Render(diags, false))
		return fmt.Errorf("type checking failed with %d error(s)", len(diags))
	}

	names := make([]string, 0, len(tc.Typings))
	for name := range tc.Typings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s : %s\n", name, types.ApplySubst(tc.Subst, tc.Typings[name]))
	}

	return nil
}

// readTypecheckInput reads the file named by args[0], or stdin if no file
// was given; unlike parse, typecheck has no -e/--expression flag.
func readTypecheckInput(args []string) (input, file string, err error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}
