// Package cli implements the adjnews command tree.
package cli

import (
	"fmt"

	"github.com/adjacent-hq/adjnews-go/internal/config"
	"github.com/adjacent-hq/adjnews-go/internal/logger"
	"github.com/adjacent-hq/adjnews-go/pkg/adjnews"
	"github.com/spf13/cobra"
)

// state carries the config-derived objects shared by subcommands. It is
// populated once per invocation by prepare.
type state struct {
	cfg    *config.Config
	client *adjnews.Client
	output string
}

func (s *state) prepare() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	client, err := adjnews.New(
		adjnews.WithAPIKey(cfg.APIKey),
		adjnews.WithTimeout(cfg.RequestTimeout),
		adjnews.WithLogger(log),
	)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.client = client
	if s.output == "" {
		s.output = cfg.Output
	}
	return nil
}

// NewRootCmd builds the adjnews command tree.
func NewRootCmd() *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:           "adjnews",
		Short:         "Query the Adjacent News prediction-market data API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&s.output, "output", "o", "", "output format: json or yaml")

	root.AddCommand(newSearchCmd(s))
	root.AddCommand(newMarketsCmd(s))
	return root
}
