// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"fmt"
	"time"

	"go.astrophena.name/addheader/cli"
	"go.astrophena.name/addheader/header"
	"go.astrophena.name/addheader/updater"
)

const (
	srcDir = "./src"
	ext    = ".js"
)

func main() { cli.Main(&app{root: srcDir, now: time.Now}) }

type app struct {
	root string
	now  func() time.Time
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	// The year is fixed for the whole run.
	hdr := header.Build(a.now().Year())

	_, err := updater.Run(ctx, updater.Options{
		Root:   a.root,
		Ext:    ext,
		Header: hdr,
		Stdout: env.Stdout,
	})
	return err
}
