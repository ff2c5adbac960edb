package cli

import (
	"github.com/spf13/cobra"

	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/filter"
	"github.com/passa-a-bola/passa-web/internal/model"
)

func newPlayersCmd() *cobra.Command {
	var criteria filter.PlayerCriteria

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[model.Player]

			if err := client.Get(cmd.Context(), "/api/v1/players", criteria.Query(), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Search, "search", "", "Search by name")
	cmd.Flags().StringVar(&criteria.Position, "position", "", "Filter by position")
	cmd.Flags().StringVar(&criteria.Nationality, "nationality", "", "Filter by nationality")
	cmd.Flags().StringVar(&criteria.Status, "status", "", "Filter by status (Ativo, Aposentada)")

	return cmd
}

func newTournamentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tournaments",
		Short: "List tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[model.Tournament]

			if err := client.Get(cmd.Context(), "/api/v1/tournaments", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show community totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Stats

			if err := client.Get(cmd.Context(), "/api/v1/stats", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
