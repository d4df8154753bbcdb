package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	addr string

	rootCmd = &cobra.Command{
		Use:   "todo-client",
		Short: "A CLI client for the to-do task server",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&addr, "address", "a", "", "Server address, e.g. http://localhost:8080 (required)")
	rootCmd.MarkPersistentFlagRequired("address")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
