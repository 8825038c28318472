package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-chat-wizard/internal/extraction"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

var (
	extractStage     string
	extractInputFile string
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Run the field extractor on a single utterance",
	Long:  `Run the stage-scoped keyword extractor on one utterance and print the extraction patch as JSON. Useful for checking what a given answer would contribute at a given stage.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractStage, "stage", "profession", "Stage to extract at (profession, education, experience, skills, achievements, summary)")
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Read the utterance from a file instead of arguments")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	var text string
	switch {
	case extractInputFile != "":
		data, err := os.ReadFile(extractInputFile)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	case len(args) > 0:
		text = strings.Join(args, " ")
	default:
		return fmt.Errorf("provide the utterance as arguments or with --in")
	}

	patch := extraction.Extract(text, types.Stage(extractStage))

	data, err := json.MarshalIndent(patch, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
