package github

import "time"

// Account is a GitHub user as returned by the user endpoints.
type Account struct {
	Login       string    `json:"login"`
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository is a single entry from a user's repository listing.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	Fork        bool      `json:"fork"`
	HTMLURL     string    `json:"html_url"`
	CloneURL    string    `json:"clone_url"`
	Stargazers  int       `json:"stargazers_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PullRequestFile is a file changed in a pull request.
// Status values: "added", "modified", "removed", "renamed".
type PullRequestFile struct {
	Filename         string `json:"filename"`
	Status           string `json:"status"`
	Additions        int    `json:"additions"`
	Deletions        int    `json:"deletions"`
	Changes          int    `json:"changes"`
	PreviousFilename string `json:"previous_filename"` // only set when Status == "renamed"
}

// PullRequestComment is a review comment attached to a line of a pull
// request diff.
type PullRequestComment struct {
	ID        int64     `json:"id"`
	CommitID  string    `json:"commit_id"`
	Path      string    `json:"path"`
	Position  int       `json:"position"`
	Body      string    `json:"body"`
	User      Account   `json:"user"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
}

// LineComment is the request payload for posting a review comment on a
// specific line of a pull request diff.
type LineComment struct {
	CommitID string `json:"commit_id"`
	Path     string `json:"path"`
	Position int    `json:"position"`
	Body     string `json:"body"`
}

// Hook is a repository webhook.
type Hook struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	Events    []string   `json:"events"`
	Config    HookConfig `json:"config"`
	CreatedAt time.Time  `json:"created_at"`
}

// HookConfig is the delivery configuration of a webhook.
type HookConfig struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

// webhookRequest is the payload for creating a webhook.
type webhookRequest struct {
	Name   string     `json:"name"`
	Active bool       `json:"active"`
	Events []string   `json:"events"`
	Config HookConfig `json:"config"`
}

// CollaboratorInvitation is the response to adding a collaborator.
type CollaboratorInvitation struct {
	ID          int64   `json:"id"`
	Invitee     Account `json:"invitee"`
	Inviter     Account `json:"inviter"`
	Permissions string  `json:"permissions"`
	HTMLURL     string  `json:"html_url"`
}

// contentsResponse is the subset of the contents endpoint response we
// care about. Content is base64 with embedded newlines.
type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
