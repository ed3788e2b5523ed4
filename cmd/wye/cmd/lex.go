package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wye-lang/wye/internal/lexer"
)

var (
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:     "lex <path>",
	Short:   "Tokenize a Wye file and print the resulting tokens",
	Long:    `Tokenize (lex) a Wye source file and print the resulting token stream, a debugging aid for the lexer.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLex,
	Aliases: []string{"l"},
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s (%d bytes)\n---\n", path, len(content))
	}

	l := lexer.New(string(content))
	tokenCount, errorCount := 0, 0
	for {
		tok := l.NextToken()
		if lexOnlyErrors && tok.Type != lexer.ILLEGAL {
			if tok.Type == lexer.EOF {
				break
			}
			continue
		}
		tokenCount++
		if tok.Type == lexer.ILLEGAL {
			errorCount++
		}
		printLexToken(tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	if verbose {
		fmt.Printf("---\nTotal tokens: %d\n", tokenCount)
	}
	if errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}
	return nil
}

func printLexToken(tok lexer.Token) {
	out := fmt.Sprintf("[%-12s]", tok.Type)
	switch {
	case tok.Type == lexer.EOF:
		out += " EOF"
	case tok.Type == lexer.ILLEGAL:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}
