package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-chat-wizard/internal/autofill"
	"github.com/jonathan/resume-chat-wizard/internal/conversation"
	"github.com/jonathan/resume-chat-wizard/internal/llm"
	"github.com/jonathan/resume-chat-wizard/internal/observability"
	"github.com/jonathan/resume-chat-wizard/internal/session"
	"github.com/jonathan/resume-chat-wizard/internal/types"
)

var (
	chatEnhance bool
	chatVerbose bool
	chatJSONOut string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run the resume wizard interactively in the terminal",
	Long:  `Walk through the staged resume conversation on stdin/stdout. When the conversation completes, the collected answers are converted to resume form data and printed (or written to a file with --out).`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().BoolVar(&chatEnhance, "enhance", false, "Polish prose fields with the model after completion (requires GEMINI_API_KEY)")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "Print the extraction patch and state after each answer")
	chatCmd.Flags().StringVarP(&chatJSONOut, "out", "o", "", "Write the final form data JSON to a file instead of stdout")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	state := session.StartSession()
	fmt.Println(conversation.PromptFor(state.Stage))
	printSuggestions(state)

	for !conversation.IsTerminal(state.Stage) {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Println()
			return nil // EOF ends the conversation without output
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		turn := session.Advance(state, text)
		state = turn.State

		if chatVerbose {
			printer.PrintPatch(turn.Patch)
			printer.PrintState(turn.State)
		}

		fmt.Println()
		fmt.Println(turn.Prompt)
		printSuggestions(state)
	}

	form := autofill.ToFormData(state)
	if chatEnhance {
		enhanced, err := enhanceForm(cmd.Context(), state)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Enhancement unavailable, using deterministic form: %v\n", err)
		} else {
			form = enhanced
		}
	}

	if chatVerbose {
		printer.PrintFormData(form)
	}

	data, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return err
	}
	if chatJSONOut != "" {
		return os.WriteFile(chatJSONOut, data, 0o644)
	}
	fmt.Println(string(data))
	return nil
}

func printSuggestions(state types.ConversationState) {
	suggestions := conversation.SuggestionsFor(state.Stage)
	if len(suggestions) == 0 {
		return
	}
	fmt.Printf("  (try: %s)\n", strings.Join(suggestions, " | "))
}

func enhanceForm(ctx context.Context, state types.ConversationState) (types.FormData, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return types.FormData{}, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := llm.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		return types.FormData{}, err
	}
	defer client.Close() //nolint:errcheck

	return autofill.NewEnhancer(client).Enhance(ctx, state)
}
