package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sem-planner/internal/core/domain"
	"sem-planner/internal/core/planner"
)

var keywordsOpts struct {
	website    string
	competitor string
	format     string
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords [seed...]",
	Short: "Generate keywords without touching the store",
	Long: `Expand seed terms into keyword variations with synthetic metrics and
print them. Without seeds the configured sample keywords are used.

Brand and competitor sites only affect intent classification.`,
	Example: `  semplanner keywords "running shoes" "trail shoes" --website nike.com
  semplanner keywords plumbing --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		settings, err := loadSettings(cfg, logger)
		if err != nil {
			return err
		}

		synth := planner.NewSynthesizer(settings, random(cfg.Planner))
		classifier := planner.NewClassifier(keywordsOpts.website, keywordsOpts.competitor)
		analysis := planner.Summarize(synth.Generate(args, classifier))

		switch keywordsOpts.format {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		case "table":
			return printKeywordTable(cmd.OutOrStdout(), analysis)
		default:
			return fmt.Errorf("unknown format %q (want table or json)", keywordsOpts.format)
		}
	},
}

func init() {
	keywordsCmd.Flags().StringVar(&keywordsOpts.website, "website", "", "brand website")
	keywordsCmd.Flags().StringVar(&keywordsOpts.competitor, "competitor", "", "competitor website")
	keywordsCmd.Flags().StringVarP(&keywordsOpts.format, "format", "f", "table", "output format: table or json")
}

func printKeywordTable(out io.Writer, analysis domain.KeywordAnalysis) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORD\tVOLUME\tBID LOW\tBID HIGH\tCOMPETITION\tINTENT")
	for _, kw := range analysis.Keywords {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%s\t%s\n",
			kw.Text, kw.SearchVolume, kw.BidLow, kw.BidHigh, kw.Competition, kw.Intent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\n%d keywords, average volume %d, average CPC %.2f\n",
		analysis.TotalKeywords, analysis.AverageSearchVolume, analysis.AverageCPC)
	return err
}

