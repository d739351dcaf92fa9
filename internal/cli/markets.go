package cli

import (
	"github.com/adjacent-hq/adjnews-go/pkg/adjnews"
	"github.com/spf13/cobra"
)

func newMarketsCmd(s *state) *cobra.Command {
	var (
		opts   stringFilters
		floats floatFilters

		limit           int
		offset          int
		sortBy          string
		sortDir         string
		includeClosed   bool
		includeResolved bool
	)

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List prediction markets with filtering, sorting, and pagination",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.prepare()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			listOpts := &adjnews.ListMarketsOptions{
				Limit:           limit,
				Offset:          offset,
				SortBy:          sortBy,
				SortDir:         sortDir,
				IncludeClosed:   includeClosed,
				IncludeResolved: includeResolved,
			}
			// Filters the user did not set stay nil and are omitted
			// from the request entirely.
			listOpts.Platform = opts.changed(cmd, "platform")
			listOpts.Status = opts.changed(cmd, "status")
			listOpts.Category = opts.changed(cmd, "category")
			listOpts.MarketType = opts.changed(cmd, "market-type")
			listOpts.Keyword = opts.changed(cmd, "keyword")
			listOpts.Tag = opts.changed(cmd, "tag")
			listOpts.CreatedAfter = opts.changed(cmd, "created-after")
			listOpts.CreatedBefore = opts.changed(cmd, "created-before")
			listOpts.ProbabilityMin = floats.changed(cmd, "probability-min")
			listOpts.ProbabilityMax = floats.changed(cmd, "probability-max")

			payload, err := s.client.ListMarkets(cmd.Context(), listOpts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), s.output, payload)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of results to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&sortBy, "sort-by", adjnews.SortByUpdatedAt, "sort field: created_at, updated_at, end_date, probability, volume, liquidity")
	cmd.Flags().StringVar(&sortDir, "sort-dir", adjnews.SortDesc, "sort direction: asc or desc")
	cmd.Flags().BoolVar(&includeClosed, "include-closed", false, "include closed markets")
	cmd.Flags().BoolVar(&includeResolved, "include-resolved", false, "include resolved markets")

	opts.register(cmd, "platform", "filter by platform name, e.g. kalshi or polymarket")
	opts.register(cmd, "status", "filter by market status, e.g. active or resolved")
	opts.register(cmd, "category", "filter by market category")
	opts.register(cmd, "market-type", "filter by market type, e.g. binary or scalar")
	opts.register(cmd, "keyword", "search within question, description, and rules")
	opts.register(cmd, "tag", "filter by tag")
	opts.register(cmd, "created-after", "markets created after this ISO timestamp")
	opts.register(cmd, "created-before", "markets created before this ISO timestamp")
	floats.register(cmd, "probability-min", "minimum market probability")
	floats.register(cmd, "probability-max", "maximum market probability")
	return cmd
}

// stringFilters tracks optional string flags so unset ones map to nil.
type stringFilters struct {
	values map[string]*string
}

func (f *stringFilters) register(cmd *cobra.Command, name, usage string) {
	if f.values == nil {
		f.values = make(map[string]*string)
	}
	var v string
	cmd.Flags().StringVar(&v, name, "", usage)
	f.values[name] = &v
}

func (f *stringFilters) changed(cmd *cobra.Command, name string) *string {
	if cmd.Flags().Changed(name) {
		return f.values[name]
	}
	return nil
}

// floatFilters tracks optional float flags so unset ones map to nil.
type floatFilters struct {
	values map[string]*float64
}

func (f *floatFilters) register(cmd *cobra.Command, name, usage string) {
	if f.values == nil {
		f.values = make(map[string]*float64)
	}
	var v float64
	cmd.Flags().Float64Var(&v, name, 0, usage)
	f.values[name] = &v
}

func (f *floatFilters) changed(cmd *cobra.Command, name string) *float64 {
	if cmd.Flags().Changed(name) {
		return f.values[name]
	}
	return nil
}
