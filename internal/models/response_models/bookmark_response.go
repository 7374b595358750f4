package response_models

type BookmarkResponse struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destination_id"`
	Title         string   `json:"title"`
	Region        string   `json:"region"`
	Images        []string `json:"images"`
}
