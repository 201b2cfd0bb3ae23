// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package clitest_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"go.astrophena.name/addheader/cli"
	"go.astrophena.name/addheader/cli/clitest"
)

var errNoHeader = errors.New("no header")

// stampApp stamps the text read from stdin with the header named by the
// HEADER environment variable. Its first argument selects a failure mode.
type stampApp struct {
	stamped int
}

func (a *stampApp) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 0 {
		switch env.Args[0] {
		case "missing":
			return fmt.Errorf("stamping src/a.js: %w", errNoHeader)
		case "unreadable":
			return &fs.PathError{Op: "open", Path: "src/a.js", Err: fs.ErrPermission}
		}
	}

	hdr := env.Getenv("HEADER")
	if hdr == "" {
		return nil
	}
	text, err := io.ReadAll(env.Stdin)
	if err != nil {
		return err
	}
	if strings.HasPrefix(string(text), "/*") {
		fmt.Fprintln(env.Stderr, "already stamped")
		return nil
	}
	a.stamped++
	fmt.Fprint(env.Stdout, hdr+string(text))
	return nil
}

func TestRun(t *testing.T) {
	setup := func(t *testing.T) *stampApp { return &stampApp{} }

	clitest.Run(t, setup, map[string]clitest.Case[*stampApp]{
		"no header configured": {
			Stdin:              strings.NewReader("body\n"),
			WantNothingPrinted: true,
		},
		"stamps stdin": {
			Stdin:        strings.NewReader("body\n"),
			Env:          map[string]string{"HEADER": "/* H */\n\n"},
			WantInStdout: "/* H */\n\nbody\n",
			CheckFunc: func(t *testing.T, a *stampApp) {
				if a.stamped != 1 {
					t.Errorf("stamped = %d, want 1", a.stamped)
				}
			},
		},
		"already stamped": {
			Stdin:        strings.NewReader("/* old */\n\nbody\n"),
			Env:          map[string]string{"HEADER": "/* H */\n\n"},
			WantInStderr: "already stamped",
			CheckFunc: func(t *testing.T, a *stampApp) {
				if a.stamped != 0 {
					t.Errorf("stamped = %d, want 0", a.stamped)
				}
			},
		},
		"WantErr matches wrapped errors": {
			Args:    []string{"missing"},
			WantErr: errNoHeader,
		},
		"WantErrType matches error types": {
			Args:        []string{"unreadable"},
			WantErrType: &fs.PathError{},
		},
	})
}
