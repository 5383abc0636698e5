package main

import (
	"github.com/spf13/cobra"

	"sem-planner/internal/adapter/usecase"
	"sem-planner/internal/core/port"
	"sem-planner/internal/db"
)

var seedDemoOnly bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo plans",
	Long: `Store the demo plan and one plan per built-in sample request. Demo
plans can be removed again with DELETE /api/v1/sem/test/clear-data.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.close()

		var requests []port.CreatePlanRequest
		if !seedDemoOnly {
			requests = usecase.SamplePlanRequests()
		}
		ids, err := db.Seed(cmd.Context(), a.svc, requests, a.logger)
		if err != nil {
			return err
		}
		a.logger.Info("seed complete", "plans", len(ids))
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedDemoOnly, "demo-only", false, "store only the fixed demo plan")
}
