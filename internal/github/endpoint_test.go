package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		want     string
	}{
		{
			name:     "pull request files",
			endpoint: PullRequestFilesEndpoint{Repo: "a/b", Number: 42},
			want:     "https://api.github.com/repos/a/b/pulls/42/files",
		},
		{
			name:     "pull request comments",
			endpoint: PullRequestCommentsEndpoint{Repo: "octocat/hello", Number: 7},
			want:     "https://api.github.com/repos/octocat/hello/pulls/7/comments",
		},
		{
			name:     "file content",
			endpoint: ContentsEndpoint{Repo: "a/b", Path: "lib/main.go", Ref: "abc123"},
			want:     "https://api.github.com/repos/a/b/contents/lib/main.go?ref=abc123",
		},
		{
			name:     "authenticated user",
			endpoint: UserEndpoint{},
			want:     "https://api.github.com/user",
		},
		{
			name:     "user repos",
			endpoint: UserReposEndpoint{User: "octocat"},
			want:     "https://api.github.com/users/octocat/repos",
		},
		{
			name:     "hooks",
			endpoint: HooksEndpoint{Repo: "a/b"},
			want:     "https://api.github.com/repos/a/b/hooks",
		},
		{
			name:     "collaborator",
			endpoint: CollaboratorEndpoint{Repo: "a/b", Username: "octocat"},
			want:     "https://api.github.com/repos/a/b/collaborators/octocat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildURL(APIBaseURL, tt.endpoint))
		})
	}
}

func TestBuildURL_ArgumentsInterpolatedVerbatim(t *testing.T) {
	// The builder does not escape; callers pass URL-safe values.
	url := buildURL(APIBaseURL, ContentsEndpoint{Repo: "a/b", Path: "docs/read me.md", Ref: "main"})
	assert.Equal(t, "https://api.github.com/repos/a/b/contents/docs/read me.md?ref=main", url)
}
