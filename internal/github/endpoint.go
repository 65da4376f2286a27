package github

import "fmt"

// APIBaseURL is the origin every endpoint URL is rooted at.
const APIBaseURL = "https://api.github.com"

// Endpoint identifies an API route and carries its arguments.
// The set of implementations is closed; each one maps to exactly one
// URL template. Arguments are interpolated verbatim, so callers are
// responsible for passing URL-safe values.
type Endpoint interface {
	// path returns the path-and-query portion of the endpoint URL,
	// relative to the API origin.
	path() string
}

// PullRequestFilesEndpoint lists the files changed in a pull request.
type PullRequestFilesEndpoint struct {
	Repo   string // "owner/name"
	Number int
}

func (e PullRequestFilesEndpoint) path() string {
	return fmt.Sprintf("/repos/%s/pulls/%d/files", e.Repo, e.Number)
}

// PullRequestCommentsEndpoint lists or creates review comments on a pull request.
type PullRequestCommentsEndpoint struct {
	Repo   string
	Number int
}

func (e PullRequestCommentsEndpoint) path() string {
	return fmt.Sprintf("/repos/%s/pulls/%d/comments", e.Repo, e.Number)
}

// ContentsEndpoint fetches a file's content at a given ref.
type ContentsEndpoint struct {
	Repo string
	Path string
	Ref  string
}

func (e ContentsEndpoint) path() string {
	return fmt.Sprintf("/repos/%s/contents/%s?ref=%s", e.Repo, e.Path, e.Ref)
}

// UserEndpoint fetches the authenticated user.
type UserEndpoint struct{}

func (UserEndpoint) path() string {
	return "/user"
}

// UserReposEndpoint lists the repositories of a user.
type UserReposEndpoint struct {
	User string
}

func (e UserReposEndpoint) path() string {
	return fmt.Sprintf("/users/%s/repos", e.User)
}

// HooksEndpoint lists or creates webhooks on a repository.
type HooksEndpoint struct {
	Repo string
}

func (e HooksEndpoint) path() string {
	return fmt.Sprintf("/repos/%s/hooks", e.Repo)
}

// CollaboratorEndpoint adds a user as a collaborator on a repository.
type CollaboratorEndpoint struct {
	Repo     string
	Username string
}

func (e CollaboratorEndpoint) path() string {
	return fmt.Sprintf("/repos/%s/collaborators/%s", e.Repo, e.Username)
}

// buildURL joins the API origin with the endpoint's path and query.
func buildURL(base string, e Endpoint) string {
	return base + e.path()
}
