package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/campsched/campsched/core/planner"
	"github.com/campsched/campsched/core/planview"
	"github.com/campsched/campsched/infra/logger"
	"github.com/campsched/campsched/source"
)

var (
	planInput   string
	planAsState bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate schedule options from a planning document",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "planning document (json)")
	planCmd.Flags().BoolVar(&planAsState, "plan-state", false, "print the default option as a display plan instead of raw options")
	_ = planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logg := logger.New("plan-command")
	sess, pool, locks, err := source.Load(planInput, cfg.Weeks.Slots(), logg)
	if err != nil {
		return err
	}

	gen := planner.NewGenerator(cfg.Planner, logg, nil)
	options, err := gen.Generate(ctx, sess, pool, locks)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if planAsState {
		if len(options) == 0 {
			logg.Warnf("no schedule options could be generated")
			return enc.Encode(nil)
		}
		return enc.Encode(planview.FromOption(options[0], sess.Children))
	}
	return enc.Encode(options)
}
