package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/kumkom/internal/api/request"
	"github.com/mcoot/kumkom/internal/api/response"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary lookups",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <word>",
		Short: "Check whether a word is in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordCheck

			if err := client.Get("/api/v1/dictionary/check?word="+url.QueryEscape(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search <prefix>",
		Short: "List words starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordSearch

			if err := client.Get("/api/v1/dictionary/search?prefix="+url.QueryEscape(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	})

	return cmd
}

func newBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Move generator commands",
	}

	cmd.AddCommand(newBotProposeCmd())

	return cmd
}

func newBotProposeCmd() *cobra.Command {
	var (
		file     string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Ask the generator for a move on a board you hold",
		Long: `Ask the generator for a move. --file names a JSON document with
"board" (grid rows of glyphs, "" for empty, "?" prefix for wildcard
letters), "rack" and "turn_count".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var req request.ProposeRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("invalid position file: %w", err)
			}
			if strategy != "" {
				req.Strategy = strategy
			}

			var result response.Proposal
			if err := client.Post("/api/v1/bot/propose", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Position file (required)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Bot strategy: greedy, first")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
