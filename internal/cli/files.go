package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List your files",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.FilesResponse
			if err := client.Do(http.MethodGet, "/api/files", nil, &resp); err != nil {
				return err
			}

			printResult(resp.Files, resp)
			return nil
		},
	}
}
