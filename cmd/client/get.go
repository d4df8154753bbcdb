package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Fetch a task by its identifier",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := http.Get(fmt.Sprintf("%s/task/%s", addr, args[0]))
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

		switch resp.StatusCode {
		case http.StatusOK:
			fmt.Println(string(body))
		case http.StatusNotFound:
			fmt.Println("No task with this ID exists")
			os.Exit(1)
		default:
			fmt.Printf("error! Server responded with status %d: %s", resp.StatusCode, string(body))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
