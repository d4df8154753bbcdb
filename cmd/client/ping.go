package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check if the task server is online",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(fmt.Sprintf("%s/ping", addr))
		if err != nil {
			fmt.Printf("failed to reach out server: %s", err.Error())
			os.Exit(1)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			fmt.Printf("failed to read response from server: %s", err.Error())
			os.Exit(1)
		}

		if string(body) == "pong" {
			fmt.Print("Success!")
		} else {
			fmt.Printf("error! Server responded with: %s", string(body))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
