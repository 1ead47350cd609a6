package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campsched/campsched/core/model"
	"github.com/campsched/campsched/core/planner"
	"github.com/campsched/campsched/infra/logger"
	"github.com/campsched/campsched/source"
)

var (
	suggestInput string
	suggestCount int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List additional camp suggestions for a planning document",
	Long: "Generates the default schedule for the document, then ranks the " +
		"candidates it left unused against the whole family's interests.",
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestInput, "input", "i", "", "planning document (json)")
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", 0, "number of suggestions (0 = configured default)")
	_ = suggestCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logg := logger.New("suggest-command")
	sess, pool, locks, err := source.Load(suggestInput, cfg.Weeks.Slots(), logg)
	if err != nil {
		return err
	}

	gen := planner.NewGenerator(cfg.Planner, logg, nil)
	options, err := gen.Generate(ctx, sess, pool, locks)
	if err != nil {
		return err
	}
	var selected model.ScheduleOption
	if len(options) > 0 {
		selected = options[0]
	}

	eng := planner.NewSuggestionEngine(cfg.Planner)
	suggestions := eng.Suggest(sess, pool, selected, suggestCount)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(suggestions)
}
