package admin

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloo-solutions/krishisahay/internal/config"
	"github.com/cloo-solutions/krishisahay/internal/knowledge"
	"github.com/spf13/cobra"
)

// KnowledgeCmd returns the kb command group
func KnowledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the offline knowledge base",
	}

	cmd.AddCommand(kbListCmd())
	cmd.AddCommand(kbMatchCmd())

	return cmd
}

func kbListCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge records in match order",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadBase(file)
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), base)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML knowledge file (default $KNOWLEDGE_FILE or built-in table)")

	return cmd
}

func kbMatchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "match <question>",
		Short: "Show the offline answer a question would get",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := loadBase(file)
			if err != nil {
				return err
			}

			answer, ok := base.Search(strings.Join(args, " "))
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no offline match; the question would go to the AI fallback")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML knowledge file (default $KNOWLEDGE_FILE or built-in table)")

	return cmd
}

func loadBase(file string) (*knowledge.Base, error) {
	if file == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		file = cfg.KnowledgeFile
	}
	return knowledge.Load(file)
}

func printRecords(w io.Writer, base *knowledge.Base) error {
	for i, r := range base.Records() {
		if _, err := fmt.Fprintf(w, "%d. [%s]\n   %s\n", i+1, strings.Join(r.Keywords, ", "), r.Answer); err != nil {
			return err
		}
	}
	return nil
}
