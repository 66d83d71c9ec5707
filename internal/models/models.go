package models

// StreamingPlatform is a place a movie can be streamed.
type StreamingPlatform struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

// Movie is an immutable snapshot returned by the backend. The client never
// mutates its fields; watchlist membership is overlay state keyed by ID.
type Movie struct {
	ID                 int                 `json:"id"`
	Title              string              `json:"title"`
	Year               int                 `json:"year,omitempty"`
	Poster             string              `json:"poster,omitempty"`
	Backdrop           string              `json:"backdrop,omitempty"`
	EmotionalTag       string              `json:"emotionalTag,omitempty"`
	EmotionalArc       string              `json:"emotionalArc,omitempty"`
	Type               string              `json:"type"`
	TrailerURL         string              `json:"trailerUrl,omitempty"`
	StreamingPlatforms []StreamingPlatform `json:"streamingPlatforms,omitempty"`
	Reasons            []string            `json:"reasons"`
	Reasoning          string              `json:"reasoning"`
	AlignmentScores    map[string]int      `json:"alignmentScores,omitempty"`
}

// DisplayReasons returns at most three reasons for card display.
func (m Movie) DisplayReasons() []string {
	if len(m.Reasons) > 3 {
		return m.Reasons[:3]
	}
	return m.Reasons
}

// SuggestedMovie is a movie snippet surfaced during a chat conversation.
// Year is text because the backend derives it from a release date and may
// omit it entirely.
type SuggestedMovie struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Poster string `json:"poster,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in a chat transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// User is the authenticated account returned by /users/me.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Token is the response of the login endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
