package files

import (
	"fmt"

	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
)

// Service synthesizes the per-user file listing shown on the dashboard.
// It is a placeholder: a real deployment would look up stored objects for
// the user's id.
type Service struct{}

// New creates a new files service
func New() *Service {
	return &Service{}
}

// ListForUser returns the dummy file entries for an authenticated identity
func (s *Service) ListForUser(identity *token.Identity) []string {
	return []string{
		fmt.Sprintf("File_%s_1.txt - This is a secure file for %s.", identity.Username, identity.Username),
		fmt.Sprintf("File_%s_2.txt - Another private document.", identity.Username),
		"Shared_Data.txt - This data is accessible to all logged-in users.",
	}
}
