package main

import (
	"fmt"
	"os"

	"github.com/cloo-solutions/krishisahay/internal/cli/admin"
	"github.com/cloo-solutions/krishisahay/internal/cli/client"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "krishisahayd",
		Short: "KrishiSahay agricultural question answering service",
		Long:  "KrishiSahay answers farmers' questions from an offline knowledge base and falls back to an AI model.",
	}

	rootCmd.AddCommand(admin.ServeCmd())
	rootCmd.AddCommand(admin.KnowledgeCmd())
	rootCmd.AddCommand(client.AskCmd())

	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
