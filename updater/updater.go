// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package updater applies a license header to every qualifying file in a
// directory tree.
package updater

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/addheader/header"
	"go.astrophena.name/addheader/logger"
)

// Options configure [Run].
type Options struct {
	// Root is the directory to walk recursively. A Root that doesn't exist is
	// treated as an empty directory.
	Root string
	// Ext is the extension of qualifying files, including the leading dot.
	// It is matched case-insensitively.
	Ext string
	// Header is the header to apply, as returned by [header.Build].
	Header string
	// Stdout receives one "Added Header to <path>" line for each file that had
	// no header before. If nil, the lines are discarded.
	Stdout io.Writer
}

// Stats counts what [Run] did.
type Stats struct {
	Added     int
	Replaced  int
	Malformed int
}

// Visited returns the number of qualifying files that were processed.
func (s Stats) Visited() int { return s.Added + s.Replaced + s.Malformed }

// Matches reports whether the file name matches ext, ignoring case.
func Matches(name, ext string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(ext))
}

// Run walks opts.Root in lexical order and applies opts.Header to each
// qualifying file, rewriting it in place.
//
// The first error aborts the walk. Files rewritten before it stay rewritten.
func Run(ctx context.Context, opts Options) (Stats, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}

	var st Stats
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == opts.Root && errors.Is(err, fs.ErrNotExist) {
				logger.Debug(ctx, "root directory does not exist", slog.String("root", path))
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !Matches(d.Name(), opts.Ext) {
			return nil
		}
		// WalkDir reports a symlink to a directory as a non-directory entry.
		if d.Type()&fs.ModeSymlink != 0 {
			if fi, err := os.Stat(path); err == nil && fi.IsDir() {
				return nil
			}
		}

		res, err := updateFile(path, opts.Header)
		if err != nil {
			return err
		}

		switch res.Action {
		case header.Added:
			st.Added++
			fmt.Fprintf(stdout, "Added Header to %s\n", path)
		case header.Replaced:
			st.Replaced++
			logger.Debug(ctx, "replaced header", slog.String("path", path))
		case header.Malformed:
			st.Malformed++
			logger.Warn(ctx, "leading comment is not a well-formed header, leaving file unchanged",
				slog.String("path", path),
				slog.String("reason", res.Err.Error()),
			)
		}
		return nil
	})

	logger.Debug(ctx, "finished",
		slog.String("root", opts.Root),
		slog.Int("visited", st.Visited()),
		slog.Int("added", st.Added),
		slog.Int("replaced", st.Replaced),
		slog.Int("malformed", st.Malformed),
	)
	return st, err
}

// updateFile reads the file at path, applies hdr and writes the result back,
// truncating the file.
func updateFile(path, hdr string) (header.Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return header.Result{}, err
	}

	res := header.Update(string(content), hdr)

	if err := os.WriteFile(path, []byte(res.Text), 0o644); err != nil {
		return header.Result{}, err
	}
	return res, nil
}
