package github

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// The operations below fall into two deliberate error policies.
// The three pull-request operations return errors as values for the
// caller to branch on. The remaining six panic with the underlying
// error: they are invoked from top-level tooling flows where a silent
// partial failure is worse than aborting, so failures unwind the stack
// instead of being returned.

// PullRequestFiles returns the files changed in a pull request.
func (c *Client) PullRequestFiles(repo string, number int) ([]PullRequestFile, error) {
	body, err := c.execute(http.MethodGet, PullRequestFilesEndpoint{Repo: repo, Number: number}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get files of pull request #%d: %w", number, err)
	}

	var files []PullRequestFile
	if err := json.Unmarshal(body, &files); err != nil {
		return nil, fmt.Errorf("failed to parse files of pull request #%d: %w", number, err)
	}
	return files, nil
}

// PullRequestComments returns the review comments on a pull request.
func (c *Client) PullRequestComments(repo string, number int) ([]PullRequestComment, error) {
	body, err := c.execute(http.MethodGet, PullRequestCommentsEndpoint{Repo: repo, Number: number}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments of pull request #%d: %w", number, err)
	}

	var comments []PullRequestComment
	if err := json.Unmarshal(body, &comments); err != nil {
		return nil, fmt.Errorf("failed to parse comments of pull request #%d: %w", number, err)
	}
	return comments, nil
}

// CreatePullRequestComment posts a review comment on a specific line of
// a pull request diff and returns the created comment.
func (c *Client) CreatePullRequestComment(repo string, number int, comment LineComment) (PullRequestComment, error) {
	payload, err := json.Marshal(comment)
	if err != nil {
		return PullRequestComment{}, fmt.Errorf("failed to encode comment for pull request #%d: %w", number, err)
	}

	body, err := c.execute(http.MethodPost, PullRequestCommentsEndpoint{Repo: repo, Number: number}, payload)
	if err != nil {
		return PullRequestComment{}, fmt.Errorf("failed to comment on pull request #%d: %w", number, err)
	}

	var created PullRequestComment
	if err := json.Unmarshal(body, &created); err != nil {
		return PullRequestComment{}, fmt.Errorf("failed to parse created comment on pull request #%d: %w", number, err)
	}
	return created, nil
}

// FileContent returns the decoded content of a file at the given ref.
// It panics if the request or decoding fails.
func (c *Client) FileContent(repo, path, ref string) []byte {
	body := c.mustExecute(http.MethodGet, ContentsEndpoint{Repo: repo, Path: path, Ref: ref}, nil)

	var contents contentsResponse
	mustUnmarshal(body, &contents, "file content")

	// GitHub wraps the base64 payload across lines.
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(contents.Content, "\n", ""))
	if err != nil {
		panic(fmt.Errorf("github: failed to decode content of %s@%s: %w", path, ref, err))
	}
	return decoded
}

// User returns the authenticated user. It panics if the request fails.
func (c *Client) User() Account {
	body := c.mustExecute(http.MethodGet, UserEndpoint{}, nil)

	var user Account
	mustUnmarshal(body, &user, "user")
	return user
}

// Repos returns the repositories of the given user. It panics if the
// request fails.
func (c *Client) Repos(user string) []Repository {
	body := c.mustExecute(http.MethodGet, UserReposEndpoint{User: user}, nil)

	var repos []Repository
	mustUnmarshal(body, &repos, "repositories")
	return repos
}

// Hooks returns the webhooks of a repository. It panics if the request
// fails.
func (c *Client) Hooks(repo string) []Hook {
	body := c.mustExecute(http.MethodGet, HooksEndpoint{Repo: repo}, nil)

	var hooks []Hook
	mustUnmarshal(body, &hooks, "hooks")
	return hooks
}

// CreateWebhook creates a JSON web-style hook on a repository that
// delivers the given events to hookURL. It panics if the request fails.
func (c *Client) CreateWebhook(repo, hookURL string, events []string) Hook {
	payload, err := json.Marshal(webhookRequest{
		Name:   "web",
		Active: true,
		Events: events,
		Config: HookConfig{URL: hookURL, ContentType: "json"},
	})
	if err != nil {
		panic(fmt.Errorf("github: failed to encode webhook for %s: %w", repo, err))
	}

	body := c.mustExecute(http.MethodPost, HooksEndpoint{Repo: repo}, payload)

	var hook Hook
	mustUnmarshal(body, &hook, "created hook")
	return hook
}

// AddCollaborator invites a user as a collaborator on a repository.
// It panics if the request fails.
func (c *Client) AddCollaborator(repo, username string) CollaboratorInvitation {
	body := c.mustExecute(http.MethodPut, CollaboratorEndpoint{Repo: repo, Username: username}, nil)

	var invitation CollaboratorInvitation
	mustUnmarshal(body, &invitation, "collaborator invitation")
	return invitation
}

// mustExecute is execute for the fail-loud operations.
func (c *Client) mustExecute(method string, e Endpoint, body []byte) []byte {
	respBody, err := c.execute(method, e, body)
	if err != nil {
		panic(err)
	}
	return respBody
}

func mustUnmarshal(body []byte, v any, what string) {
	if err := json.Unmarshal(body, v); err != nil {
		panic(fmt.Errorf("github: failed to parse %s response: %w", what, err))
	}
}
