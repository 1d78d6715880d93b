package response

// MessageResponse is the body of successful auth operations
type MessageResponse struct {
	Message string `json:"message"`
}

// FilesResponse is the body of the file listing endpoint
type FilesResponse struct {
	Files []string `json:"files"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
