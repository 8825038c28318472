package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-chat-wizard/internal/autofill"
	"github.com/jonathan/resume-chat-wizard/internal/session"
)

var (
	autofillInputFile  string
	autofillOutputFile string
	autofillEnhance    bool
)

var autofillCmd = &cobra.Command{
	Use:   "autofill",
	Short: "Replay a transcript file and print the resulting form data",
	Long:  `Read user answers from a text file (one answer per line), replay them through the conversation stages, and print the resume form data JSON the wizard would produce.`,
	RunE:  runAutofill,
}

func init() {
	autofillCmd.Flags().StringVarP(&autofillInputFile, "in", "i", "", "Path to transcript file, one answer per line (required)")
	autofillCmd.Flags().StringVarP(&autofillOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	autofillCmd.Flags().BoolVar(&autofillEnhance, "enhance", false, "Polish prose fields with the model (requires GEMINI_API_KEY)")
	rootCmd.AddCommand(autofillCmd)
}

func runAutofill(cmd *cobra.Command, _ []string) error {
	if autofillInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	f, err := os.Open(autofillInputFile)
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close() //nolint:errcheck

	state := session.StartSession()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		state = session.Advance(state, text).State
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	form := autofill.ToFormData(state)
	if autofillEnhance {
		enhanced, err := enhanceForm(cmd.Context(), state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Enhancement unavailable, using deterministic form: %v\n", err)
		} else {
			form = enhanced
		}
	}

	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return err
	}
	if autofillOutputFile != "" {
		return os.WriteFile(autofillOutputFile, data, 0o644)
	}
	fmt.Println(string(data))
	return nil
}
