package domain

// RunEntry is one recorded validation run.
type RunEntry struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Profile    string `json:"profile"`
	Source     string `json:"source"`
	Status     string `json:"status"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}
