package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minicc/pkg/compiler"
	"minicc/pkg/diag"
)

var Version = "0.1.0"

var outPath string

var rootCmd = &cobra.Command{
	Use:   "minicc <expression>",
	Short: "Compile an additive integer expression to x86-64 assembly",
	Long: `minicc compiles a single arithmetic expression over non-negative
integers and the binary + and - operators into x86-64 assembly on
standard output. The assembled program returns the expression's value
as its exit status:

  minicc '5+20-4' > tmp.s
  cc -o tmp tmp.s
  ./tmp; echo $?   # 21`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%s: invalid number of arguments", os.Args[0])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return compiler.Compile(args[0], out)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "", "write assembly to a file instead of stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var derr *diag.Error
		if errors.As(err, &derr) {
			derr.Render(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
