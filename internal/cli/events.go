package cli

import (
	"github.com/spf13/cobra"

	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/filter"
	"github.com/passa-a-bola/passa-web/internal/model"
)

func newEventsCmd() *cobra.Command {
	var criteria filter.EventCriteria

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List tryouts, tournaments, festivals and clinics",
		Long: `List events, optionally filtered.

--search matches the title or the venue; --type must be one of
Peneira, Torneio, Festival or Clínica.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[model.Event]

			if err := client.Get(cmd.Context(), "/api/v1/events", criteria.Query(), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria.Search, "search", "", "Search title or venue")
	cmd.Flags().StringVar(&criteria.Type, "type", "", "Event type")

	return cmd
}
