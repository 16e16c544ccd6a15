package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/kumkom/internal/api/response"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchBotCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchPlaceCmd())
	cmd.AddCommand(newMatchDiacriticCmd())
	cmd.AddCommand(newMatchChooseCmd())
	cmd.AddCommand(matchActionCmd("unchoose <id>", "Cancel the pending glyph choice", "DELETE", "/selection"))
	cmd.AddCommand(matchActionCmd("recall <id>", "Take back every tile placed this turn", "POST", "/recall"))
	cmd.AddCommand(matchActionCmd("shuffle <id>", "Shuffle your rack", "POST", "/rack/shuffle"))
	cmd.AddCommand(newMatchSwapCmd())
	cmd.AddCommand(turnCmd("commit <id>", "Validate and score the placed tiles", "/commit"))
	cmd.AddCommand(turnCmd("skip <id>", "Pass, or exchange the placed tiles", "/skip"))
	cmd.AddCommand(newMatchBotTurnCmd())

	return cmd
}

func matchPath(id, suffix string) string {
	return "/api/v1/matches/" + url.PathEscape(id) + suffix
}

// atoiArgs parses the named positional arguments as integers
func atoiArgs(args []string, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		out[i] = n
	}
	return out, nil
}

func newMatchBotCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start a match against the move generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"strategy": strategy}
			var result response.Match

			if err := client.Post("/api/v1/matches/bot", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "greedy", "Bot strategy: greedy, first")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the board, scores, and your rack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Get(matchPath(args[0], ""), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newMatchPlaceCmd() *cobra.Command {
	var glyph string

	cmd := &cobra.Command{
		Use:   "place <id> <slot> <row> <col>",
		Short: "Place a rack tile on a letter row",
		Long: `Place the tile in the given rack slot on a letter cell. Letter rows
are the odd grid rows. Wildcard and dual tiles take --glyph, or leave a
choice open for "match choose".`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiArgs(args[1:], "slot", "row", "col")
			if err != nil {
				return err
			}

			req := map[string]any{"rack_slot": nums[0], "row": nums[1], "col": nums[2]}
			if glyph != "" {
				req["glyph"] = glyph
			}
			var result response.Match

			if err := client.Post(matchPath(args[0], "/place"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&glyph, "glyph", "", "Glyph for a wildcard or dual tile")

	return cmd
}

func newMatchDiacriticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diacritic <id> <row> <col> <glyph>",
		Short: "Place a free tone mark or vowel above or below a letter",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiArgs(args[1:3], "row", "col")
			if err != nil {
				return err
			}

			req := map[string]any{"row": nums[0], "col": nums[1], "glyph": args[3]}
			var result response.Match

			if err := client.Post(matchPath(args[0], "/diacritic"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newMatchChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose <id> <glyph>",
		Short: "Resolve the pending wildcard or dual tile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"glyph": args[1]}
			var result response.Match

			if err := client.Post(matchPath(args[0], "/selection"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newMatchSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <id> <i> <j>",
		Short: "Swap two rack slots",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := atoiArgs(args[1:], "i", "j")
			if err != nil {
				return err
			}

			req := map[string]int{"i": nums[0], "j": nums[1]}
			var result response.Match

			if err := client.Post(matchPath(args[0], "/rack/swap"), req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// matchActionCmd builds a body-less command that returns the match
func matchActionCmd(use, short, method, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Do(method, matchPath(args[0], suffix), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

// turnCmd builds a command that ends the turn
func turnCmd(use, short, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.TurnOutcome

			if err := client.Post(matchPath(args[0], suffix), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newMatchBotTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot-turn <id>",
		Short: "Let the bot play if it is on turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.BotTurns

			if err := client.Post(matchPath(args[0], "/bot-turn"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
