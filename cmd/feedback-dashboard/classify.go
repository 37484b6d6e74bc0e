package main

import (
	"strings"

	"feedback-dashboard/internal/classifier"
	"feedback-dashboard/internal/render"

	"github.com/spf13/cobra"
)

var classifyOutput string

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Label one piece of feedback text",
	Long: `Assign a sentiment label and summary to a piece of feedback text.
The label is a random placeholder, not a model prediction.

Examples:
  feedback-dashboard classify "The delivery was late and the product was damaged."`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyOutput, "output", "o", render.FormatYAML, "output format: json or yaml")
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	text := strings.Join(args, " ")
	if text == "" {
		text = classifier.SampleText
	}

	res, err := classifier.NewRandom(cfg.Classifier.Seed).Classify(cmd.Context(), text)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), classifyOutput, res)
}
