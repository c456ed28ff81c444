package ghrest

import (
	"context"

	"github.com/jmgilman/go/errors"
)

// WalkFunc is called by WalkFiles for every file in the tree, in the order
// the files are fetched. Returning an error stops the walk.
type WalkFunc func(file *FileContent) error

// pendingPaths is the FIFO of directories still to be listed. Directories
// are queued as they are discovered, which makes the walk breadth-first and
// keeps the stack flat regardless of tree depth.
type pendingPaths struct {
	paths []string
}

func (q *pendingPaths) push(path string) {
	q.paths = append(q.paths, path)
}

func (q *pendingPaths) pop() (string, bool) {
	if len(q.paths) == 0 {
		return "", false
	}
	path := q.paths[0]
	q.paths[0] = ""
	q.paths = q.paths[1:]
	return path, true
}

// WalkFiles visits every file on branch, breadth-first from the repository
// root, fetching each file and passing it to fn.
//
// Each directory costs one listing call and each file one fetch; requests
// are issued one at a time. Entries that are neither files nor directories
// (symlinks, submodules) are skipped. The first failed call, or the first
// error returned by fn, aborts the walk and is returned.
//
// The walk is not atomic: the branch can move between calls, so the files
// seen are not guaranteed to come from a single commit.
func (c *Client) WalkFiles(ctx context.Context, owner, repo, branch string, fn WalkFunc) error {
	queue := &pendingPaths{}
	queue.push("")

	var dirs, files int
	for {
		dir, ok := queue.pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return interrupted(err, dir)
		}

		entries, err := c.ListDirectory(ctx, owner, repo, dir, branch)
		if err != nil {
			return err
		}
		dirs++
		c.logger.DebugContext(ctx, "listed directory", "path", dir, "entries", len(entries))

		for _, entry := range entries {
			switch entry.Type {
			case EntryTypeFile:
				file, err := c.GetFile(ctx, owner, repo, entry.Path, branch)
				if err != nil {
					return err
				}
				files++
				if err := fn(file); err != nil {
					return err
				}
			case EntryTypeDir:
				queue.push(entry.Path)
			}
		}
	}

	c.logger.InfoContext(ctx, "walked repository",
		"owner", owner,
		"repo", repo,
		"branch", branch,
		"directories", dirs,
		"files", files,
	)

	return nil
}

// interrupted reports a walk stopped by its context before listing dir.
func interrupted(err error, dir string) error {
	code := errors.CodeUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		code = errors.CodeTimeout
	}
	return errors.WithContext(errors.Wrap(err, code, "repository walk interrupted"), "path", dir)
}

// ListAllFiles returns every file on branch with its decoded content.
// See WalkFiles for the traversal. On failure no files are returned.
func (c *Client) ListAllFiles(ctx context.Context, owner, repo, branch string) ([]*FileContent, error) {
	files := []*FileContent{}
	err := c.WalkFiles(ctx, owner, repo, branch, func(file *FileContent) error {
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
