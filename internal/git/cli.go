package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/stwalsh4118/tagit/internal/debug"
)

// CLI is a Backend that shells out to the git binary.
type CLI struct {
	opts Options
	// Binary is the git executable, "git" unless overridden.
	Binary string
}

// NewCLI returns a CLI backend.
func NewCLI(opts Options) *CLI {
	return &CLI{opts: opts, Binary: "git"}
}

// run executes git in the repository and returns trimmed stdout.
func (c *CLI) run(ctx context.Context, repo Repository, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Dir = repo.Path

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	debug.Debug("running git", "dir", repo.Path, "args", strings.Join(args, " "))
	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %s: %w", args[0], msg, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// IsRepo checks if the repository path is inside a git work tree.
func (c *CLI) IsRepo(ctx context.Context, repo Repository) bool {
	_, err := c.run(ctx, repo, "rev-parse", "--git-dir")
	return err == nil
}

// ResolveCommit returns the full SHA of the commit rev points at.
func (c *CLI) ResolveCommit(ctx context.Context, repo Repository, rev string) (string, error) {
	if rev == "" {
		rev = "HEAD"
	}
	if !c.IsRepo(ctx, repo) {
		return "", fmt.Errorf("%s: %w", repo.Path, ErrNotRepository)
	}
	sha, err := c.run(ctx, repo, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil || sha == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidCommit, rev)
	}
	return sha, nil
}

// GetAllTags lists every tag name in the repository.
func (c *CLI) GetAllTags(ctx context.Context, repo Repository) ([]string, error) {
	output, err := c.run(ctx, repo, "tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// CreateTag creates a tag. A configured message makes it annotated.
func (c *CLI) CreateTag(ctx context.Context, repo Repository, name, commitSHA string) error {
	if err := checkTagArgs(name, commitSHA); err != nil {
		return err
	}

	if _, err := c.run(ctx, repo, "rev-parse", "--verify", "--quiet", "refs/tags/"+name); err == nil {
		return fmt.Errorf("%w: %s", ErrTagExists, name)
	}

	args := []string{"tag"}
	if c.opts.Message != "" {
		args = append(args, "-a", "-m", c.opts.Message)
	}
	args = append(args, "--", name, commitSHA)

	if _, err := c.run(ctx, repo, args...); err != nil {
		return fmt.Errorf("create tag %s: %w", name, err)
	}
	return nil
}
