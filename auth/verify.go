package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Identity is what GitHub reports about a token.
type Identity struct {
	Login  string
	Scopes []string // Classic token scopes; empty for fine-grained tokens
}

// Repository is what a token can see of a repository.
type Repository struct {
	FullName      string
	Private       bool
	DefaultBranch string
	CanPush       bool
}

// Verifier checks tokens against the GitHub API.
type Verifier struct {
	enterpriseURL string
	httpClient    *http.Client
}

// VerifierOption configures a Verifier.
type VerifierOption func(*Verifier)

// WithEnterpriseURL points the verifier at a GitHub Enterprise Server,
// e.g. "https://github.example.com/".
func WithEnterpriseURL(baseURL string) VerifierOption {
	return func(v *Verifier) {
		v.enterpriseURL = baseURL
	}
}

// WithHTTPClient sets the base transport. The token is layered on top of it.
func WithHTTPClient(c *http.Client) VerifierOption {
	return func(v *Verifier) {
		v.httpClient = c
	}
}

// NewVerifier creates a verifier for github.com unless configured otherwise.
func NewVerifier(opts ...VerifierOption) *Verifier {
	v := &Verifier{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Verifier) client(ctx context.Context, token string) (*github.Client, error) {
	if v.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, v.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	if v.enterpriseURL == "" {
		return client, nil
	}
	return client.WithEnterpriseURLs(v.enterpriseURL, v.enterpriseURL)
}

// Verify fetches the user the token authenticates as.
// Returns ErrInvalidToken if GitHub rejects it.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	client, err := v.client(ctx, token)
	if err != nil {
		return nil, err
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, wrapError(opGetUser, resp, err)
	}

	id := &Identity{Login: user.GetLogin()}
	if scopes := resp.Header.Get("X-OAuth-Scopes"); scopes != "" {
		for _, s := range strings.Split(scopes, ",") {
			if s = strings.TrimSpace(s); s != "" {
				id.Scopes = append(id.Scopes, s)
			}
		}
	}
	return id, nil
}

// RepoAccess confirms the token can read slug ("owner/repo").
// Returns ErrRepoNotFound if the repository is missing or hidden from the token.
func (v *Verifier) RepoAccess(ctx context.Context, token, slug string) (*Repository, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return nil, ErrInvalidRepo
	}

	client, err := v.client(ctx, token)
	if err != nil {
		return nil, err
	}

	repo, resp, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, wrapError(opGetRepo, resp, err)
	}

	return &Repository{
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
		CanPush:       repo.GetPermissions()["push"],
	}, nil
}

// wrapError maps API status codes onto the package sentinels.
func wrapError(op string, resp *github.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	switch {
	case status == http.StatusUnauthorized:
		err = ErrInvalidToken
	case status == http.StatusNotFound && op == opGetRepo:
		err = ErrRepoNotFound
	}
	return &Error{Op: op, Status: status, Err: err}
}

const (
	opGetUser = "get user"
	opGetRepo = "get repository"
)
