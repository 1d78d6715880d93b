package handler

import (
	"net/http"

	"github.com/PriyankaYambem/cloud-manager/internal/api/middleware"
	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
	"github.com/PriyankaYambem/cloud-manager/internal/services/files"
)

// FilesHandler handles the protected file listing endpoint
type FilesHandler struct {
	filesService *files.Service
}

// NewFilesHandler creates a new files handler
func NewFilesHandler(filesService *files.Service) *FilesHandler {
	return &FilesHandler{
		filesService: filesService,
	}
}

// List handles GET /api/files
func (h *FilesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.MustGetIdentity(r.Context())
	response.JSON(w, http.StatusOK, response.FilesResponse{
		Files: h.filesService.ListForUser(identity),
	})
}
