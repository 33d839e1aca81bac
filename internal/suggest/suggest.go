package suggest

// Kind tags where a suggestion value came from.
type Kind string

const (
	KindTitle  Kind = "title"
	KindAuthor Kind = "author"
	KindTopic  Kind = "topic"
)

// Suggestion is a single autocomplete candidate.
type Suggestion struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}
