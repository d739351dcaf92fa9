package cli

import (
	"fmt"
	"strings"

	"github.com/adjacent-hq/adjnews-go/pkg/adjnews"
	"github.com/spf13/cobra"
)

func newSearchCmd(s *state) *cobra.Command {
	var (
		limit          int
		includeContext bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over prediction markets",
		Long: "Search markets conceptually related to the query using the API's " +
			"vector-embedding search, beyond plain keyword matching.",
		Args: cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.prepare()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("search query is empty")
			}

			payload, err := s.client.SemanticSearch(cmd.Context(), query, &adjnews.SearchOptions{
				Limit:          limit,
				IncludeContext: includeContext,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), s.output, payload)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")
	cmd.Flags().BoolVar(&includeContext, "include-context", false, "include relevance scores and match context")
	return cmd
}
