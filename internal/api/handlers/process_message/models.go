package process_message

// ProcessMessageRequest HTTP request model
type ProcessMessageRequest struct {
	Message string `json:"message"`
}

// ProcessMessageResponse HTTP response model
type ProcessMessageResponse struct {
	Response string `json:"response"`
}
