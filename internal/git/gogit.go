package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/stwalsh4118/tagit/internal/debug"
)

// GoGit is a Backend implemented with go-git, no git binary required.
type GoGit struct {
	opts Options
	now  func() time.Time
}

// NewGoGit returns a go-git backend.
func NewGoGit(opts Options) *GoGit {
	return &GoGit{opts: opts, now: time.Now}
}

func (g *GoGit) open(repo Repository) (*gogit.Repository, error) {
	r, err := gogit.PlainOpenWithOptions(repo.Path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%s: %w", repo.Path, ErrNotRepository)
		}
		return nil, fmt.Errorf("open repository %s: %w", repo.Path, err)
	}
	return r, nil
}

// IsRepo reports whether go-git can open the repository.
func (g *GoGit) IsRepo(_ context.Context, repo Repository) bool {
	_, err := g.open(repo)
	return err == nil
}

// ResolveCommit returns the full SHA of the commit rev points at.
func (g *GoGit) ResolveCommit(_ context.Context, repo Repository, rev string) (string, error) {
	if rev == "" {
		rev = "HEAD"
	}
	r, err := g.open(repo)
	if err != nil {
		return "", err
	}

	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidCommit, rev, err)
	}

	// Annotated tags resolve to the tag object; peel to the commit.
	if tag, err := r.TagObject(*hash); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidCommit, rev, err)
		}
		return commit.Hash.String(), nil
	}
	if _, err := r.CommitObject(*hash); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidCommit, rev, err)
	}
	return hash.String(), nil
}

// GetAllTags lists every tag name in the repository.
func (g *GoGit) GetAllTags(_ context.Context, repo Repository) ([]string, error) {
	r, err := g.open(repo)
	if err != nil {
		return nil, err
	}

	iter, err := r.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer iter.Close()

	names := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return names, nil
}

// CreateTag creates a tag. A configured message makes it annotated.
func (g *GoGit) CreateTag(ctx context.Context, repo Repository, name, commitSHA string) error {
	if err := checkTagArgs(name, commitSHA); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := g.open(repo)
	if err != nil {
		return err
	}

	hash := plumbing.NewHash(commitSHA)
	if _, err := r.CommitObject(hash); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCommit, commitSHA, err)
	}

	var opts *gogit.CreateTagOptions
	if g.opts.Message != "" {
		opts = &gogit.CreateTagOptions{
			Tagger:  g.tagger(r),
			Message: g.opts.Message,
		}
	}

	debug.Debug("creating tag with go-git", "dir", repo.Path, "tag", name, "commit", ShortSHA(commitSHA))
	if _, err := r.CreateTag(name, hash, opts); err != nil {
		if errors.Is(err, gogit.ErrTagExists) {
			return fmt.Errorf("%w: %s", ErrTagExists, name)
		}
		return fmt.Errorf("create tag %s: %w", name, err)
	}
	return nil
}

// tagger picks the signature for annotated tags: explicit options first,
// then the repository's user config.
func (g *GoGit) tagger(r *gogit.Repository) *object.Signature {
	sig := &object.Signature{
		Name:  g.opts.TaggerName,
		Email: g.opts.TaggerEmail,
		When:  g.now(),
	}
	if sig.Name != "" && sig.Email != "" {
		return sig
	}
	if cfg, err := r.Config(); err == nil {
		if sig.Name == "" {
			sig.Name = cfg.User.Name
		}
		if sig.Email == "" {
			sig.Email = cfg.User.Email
		}
	}
	if sig.Name == "" {
		sig.Name = "tagit"
	}
	return sig
}
