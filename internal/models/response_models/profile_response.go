package response_models

type ProfileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedProfileResponse carries the access token issued alongside a new
// profile; the token scopes bookmarks and quiz results to it.
type CreatedProfileResponse struct {
	Profile ProfileResponse `json:"profile"`
	Token   string          `json:"token"`
}
