package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

import _ "github.com/joho/godotenv/autoload"

var version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:           "trustctl",
		Short:         "Score supplement review trustworthiness from the command line",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newProductsCmd())
	root.AddCommand(newScanCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
