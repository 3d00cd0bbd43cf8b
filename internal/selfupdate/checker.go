package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "abhisek"
	defaultRepo            = "gauntlet"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker talks to GitHub releases to find and apply updates.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release download base URL.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// withExecPath overrides executable path resolution for tests.
func withExecPath(f func() (string, error)) Option {
	return func(c *Checker) { c.execPath = f }
}

// NewChecker creates a Checker with defaults for the public repo.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput holds the current version to compare against.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries the latest release and compares it semantically with the
// running version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	base := strings.TrimRight(c.apiBaseURL, "/")
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", base, c.owner, c.repo)

	body, err := c.downloadFile(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}

	var rel releaseResponse
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("parse release response: %w", err)
	}
	if rel.TagName == "" {
		return nil, fmt.Errorf("release response missing tag_name")
	}

	current := normalizeVersion(input.Version)
	latest := normalizeVersion(rel.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("invalid release tag %q", rel.TagName)
	}

	available := !semver.IsValid(current) || semver.Compare(latest, current) > 0
	return &CheckResult{
		UpdateAvailable: available,
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
	}, nil
}

// normalizeVersion ensures the "v" prefix semver expects.
func normalizeVersion(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
