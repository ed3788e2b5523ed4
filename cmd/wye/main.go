// Command wye is the Wye front-end CLI: lexing, parsing, and type checking
// for the Wye language, with no evaluator or code generator.
package main

import (
	"fmt"
	"os"

	"github.com/wye-lang/wye/cmd/wye/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
