package catalog_models

// Destination is one entry of the travel catalog. Media files are referenced
// by logical name and resolved against the bundled asset set at read time.
type Destination struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Region        string         `json:"region"`
	Summary       string         `json:"summary"`
	Facts         []string       `json:"facts"`
	ImageNames    []string       `json:"imageNames"`
	NarrationFile string         `json:"audioName"`
	Captions      []Caption      `json:"captions,omitempty"`
	Quiz          []QuizQuestion `json:"quiz"`
}

// Caption is a timed narration caption. Start and end are fractional seconds.
// Captions are ordered by start time; overlap is tolerated.
type Caption struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}
