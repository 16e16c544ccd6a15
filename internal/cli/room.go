package cli

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/kumkom/internal/api/response"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomLeaveCmd())

	return cmd
}

func roomPath(code string, parts ...string) string {
	return "/api/v1/rooms/" + url.PathEscape(strings.ToUpper(code)) + strings.Join(parts, "")
}

func newRoomCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a room and take the first seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Room

			if err := client.Post("/api/v1/rooms", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get room details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Room

			if err := client.Get(roomPath(args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Take the free seat; a full room starts its match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Room

			if err := client.Post(roomPath(args[0], "/join"), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <code>",
		Short: "Leave a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Post(roomPath(code, "/leave"), nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage(fmt.Sprintf("Left room %s", code))
			return nil
		},
	}
}

func newQueueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Matchmaking commands",
	}

	cmd.AddCommand(newQueueFindCmd())
	cmd.AddCommand(newQueueCancelCmd())

	return cmd
}

func newQueueFindCmd() *cobra.Command {
	var (
		wait     bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Queue for a random opponent",
		Long: `Queue for a random opponent. Without --wait the command reports the
current status once; run it again to collect a pairing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Matchmaking

			for {
				if err := client.Post("/api/v1/matchmaking", nil, &result); err != nil {
					return err
				}
				if !wait || result.Status == response.MatchmakingMatched {
					break
				}

				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(interval):
				}
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until an opponent is found")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Polling interval with --wait")

	return cmd
}

func newQueueCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Leave the matchmaking queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/matchmaking", nil); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Left the queue")
			return nil
		},
	}
}
