package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"todo-server/internal/domain/models"
)

var (
	createTitle       string
	createDescription string
	createStatus      string
	createDue         string

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new task and print its server-assigned identifier",
		Run: func(cmd *cobra.Command, args []string) {
			due, err := time.Parse(time.RFC3339, createDue)
			if err != nil {
				fmt.Printf("invalid --due value, expected RFC 3339 timestamp: %s", err.Error())
				os.Exit(1)
			}

			task := models.UnvalidatedTask{
				Title:  createTitle,
				Status: models.TaskStatus(createStatus),
				Due:    due,
			}
			if createDescription != "" {
				task.Description = &createDescription
			}

			payload, err := json.Marshal(task)
			if err != nil {
				fmt.Printf("failed to encode task: %s", err.Error())
				os.Exit(1)
			}

			resp, err := http.Post(fmt.Sprintf("%s/task", addr), "application/json", bytes.NewReader(payload))
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

			if resp.StatusCode != http.StatusOK {
				fmt.Printf("error! Server responded with status %d: %s", resp.StatusCode, string(body))
				os.Exit(1)
			}
			fmt.Println(string(body))
		},
	}
)

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Title of the task (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description of the task")
	createCmd.Flags().StringVar(&createStatus, "status", "", "Initial status of the task (defaults to NotStarted)")
	createCmd.Flags().StringVar(&createDue, "due", "", "Due date & time of the task, RFC 3339 (required)")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("due")

	rootCmd.AddCommand(createCmd)
}
