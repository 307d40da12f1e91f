package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// QueryRequest represents the query API request.
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse represents the query API response.
type QueryResponse struct {
	Source string `json:"source"`
	Answer string `json:"answer"`
}

// AskCmd creates the ask command.
func AskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ask <question>",
		Short:        "Ask a running server a question",
		Long:         "Sends a question to the KrishiSahay API and prints the answer with its source.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			api := NewAPIClientWithFlags(cmd.Flags())
			return runAsk(cmd, api, strings.Join(args, " "), outputJSON)
		},
	}

	cmd.Flags().String("api-url", "", "API base URL (default $KRISHI_API_URL or http://localhost:5000)")
	cmd.Flags().BoolP("output", "o", false, "Print the raw JSON response")

	return cmd
}

func runAsk(cmd *cobra.Command, api *APIClient, question string, outputJSON bool) error {
	var resp QueryResponse
	if err := api.PostJSON(cmd.Context(), "/api/query", QueryRequest{Question: question}, &resp); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	return printAnswer(cmd.OutOrStdout(), resp, outputJSON)
}

func printAnswer(w io.Writer, resp QueryResponse, outputJSON bool) error {
	if outputJSON {
		output, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}

	_, err := fmt.Fprintf(w, "[%s] %s\n", resp.Source, resp.Answer)
	return err
}
