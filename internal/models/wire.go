package models

// Wire shapes for the CinePulse backend API.

// RecommendationRequest is the payload of POST /api/v1/recommend.
type RecommendationRequest struct {
	Mood        string  `json:"mood"`
	Intent      string  `json:"intent,omitempty"`
	Context     Context `json:"context,omitempty"`
	Personality string  `json:"personality,omitempty"`
}

// RecommendationResponse is the recommendation batch with its rationale.
type RecommendationResponse struct {
	Recommendations []Movie `json:"recommendations"`
	Explanation     string  `json:"explanation"`
}

// ChatContext tags a chat turn with the calling surface.
type ChatContext struct {
	Platform string `json:"platform"`
	Mode     string `json:"mode"`
}

// ChatRequest carries the full transcript plus the context tag.
type ChatRequest struct {
	Messages []Message   `json:"messages"`
	Context  ChatContext `json:"context"`
}

// ChatResponse is one assistant turn, optionally with movie snippets the
// assistant mentioned.
type ChatResponse struct {
	Message         Message          `json:"message"`
	SuggestedMovies []SuggestedMovie `json:"suggested_movies,omitempty"`
}

// ResearchRequest asks the backend to deep-scan a single title.
type ResearchRequest struct {
	Title string `json:"title"`
}

// ShareCreateRequest is the snapshot-creation payload.
type ShareCreateRequest struct {
	Mood        string  `json:"mood"`
	Intent      string  `json:"intent,omitempty"`
	Personality string  `json:"personality,omitempty"`
	Context     Context `json:"context,omitempty"`
	MovieIDs    []int   `json:"movie_ids"`
}

// ShareCreateResponse returns the opaque id and the relative share path.
type ShareCreateResponse struct {
	ShareID string `json:"share_id"`
	URL     string `json:"url"`
}

// ShareSnapshot is the immutable record a share viewer reconstructs.
type ShareSnapshot struct {
	Mood        string  `json:"mood"`
	Intent      string  `json:"intent,omitempty"`
	Personality string  `json:"personality,omitempty"`
	Context     Context `json:"context,omitempty"`
	Movies      []Movie `json:"movies"`
}
