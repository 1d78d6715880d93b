package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.HealthResponse
			if err := client.Do(http.MethodGet, "/api/health", nil, &resp); err != nil {
				return err
			}

			printResult([]string{"Server status: " + resp.Status}, resp)
			return nil
		},
	}
}
