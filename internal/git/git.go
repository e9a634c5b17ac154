// Package git provides the repository dispatchers the tag dialog uses to list
// and create tags.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/stwalsh4118/tagit/internal/pathutil"
)

// Sentinel errors returned by every Backend.
var (
	ErrNotRepository = errors.New("not a git repository")
	ErrEmptyTagName  = errors.New("tag name is empty")
	ErrInvalidCommit = errors.New("invalid commit")
	ErrTagExists     = errors.New("tag already exists")
)

// Backend names accepted by New.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

// ShortSHALength is the number of hex digits shown for abbreviated commits.
const ShortSHALength = 7

// Repository identifies a working copy on disk.
type Repository struct {
	Path string
}

// NewRepository returns a Repository for dir, expanding "~/" and making the
// path absolute.
func NewRepository(dir string) (Repository, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(pathutil.ExpandPath(dir))
	if err != nil {
		return Repository{}, fmt.Errorf("resolve repository path %q: %w", dir, err)
	}
	return Repository{Path: abs}, nil
}

// Name returns the base name of the repository directory.
func (r Repository) Name() string {
	return filepath.Base(r.Path)
}

// String returns the repository path shortened for display.
func (r Repository) String() string {
	return pathutil.ShortenPath(r.Path)
}

// Dispatcher performs the repository operations the tag dialog needs.
type Dispatcher interface {
	// GetAllTags returns the names of every tag in the repository.
	GetAllTags(ctx context.Context, repo Repository) ([]string, error)
	// CreateTag creates a tag named name pointing at commitSHA.
	CreateTag(ctx context.Context, repo Repository, name, commitSHA string) error
}

// Backend is a Dispatcher that can also resolve revisions.
type Backend interface {
	Dispatcher
	// IsRepo reports whether repo is inside a git repository.
	IsRepo(ctx context.Context, repo Repository) bool
	// ResolveCommit returns the full commit SHA that rev names.
	ResolveCommit(ctx context.Context, repo Repository, rev string) (string, error)
}

// Options configures a Backend.
type Options struct {
	// Message turns created tags into annotated tags with this message.
	// Empty means lightweight tags.
	Message string
	// TaggerName and TaggerEmail sign annotated tags created by the go-git
	// backend. The CLI backend uses git's own configuration.
	TaggerName  string
	TaggerEmail string
}

// New returns the backend registered under name.
func New(name string, opts Options) (Backend, error) {
	switch name {
	case BackendCLI, "":
		return NewCLI(opts), nil
	case BackendGoGit:
		return NewGoGit(opts), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", name)
	}
}

// ShortSHA abbreviates a commit SHA for display.
func ShortSHA(sha string) string {
	if len(sha) > ShortSHALength {
		return sha[:ShortSHALength]
	}
	return sha
}

func checkTagArgs(name, commitSHA string) error {
	if name == "" {
		return ErrEmptyTagName
	}
	if commitSHA == "" {
		return fmt.Errorf("%w: empty commit", ErrInvalidCommit)
	}
	return nil
}
