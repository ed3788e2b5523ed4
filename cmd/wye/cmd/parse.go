package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/diag"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/parser"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Wye source file and display its AST",
	Long: `Parse a Wye source file and display its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show one line per top-level statement instead of the
program's default rendering.`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runParse,
	Aliases: []string{"p"},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump one line per top-level statement")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, file, err := readParseInput(args)
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

	if parseDumpAST {
		dumpProgram(program)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func readParseInput(args []string) (input, file string, err error) {
	switch {
	case parseExpression:
		if len(args) == 0 {
			return "", "", fmt.Errorf("no expression provided")
		}
		return args[0], "<expression>", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}

// dumpProgram prints one line per top-level statement: its Go type and its
// own String() rendering, which recursively renders the full subtree.
func dumpProgram(program *ast.Program) {
	fmt.Printf("Program (%d statements)\n", len(program.Statements))
	for i, stmt := range program.Statements {
		fmt.Printf("  [%d] %T: %s\n", i, stmt, stmt.String())
	}
}
