// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/addheader/cli"
	"go.astrophena.name/addheader/cli/clitest"
	"go.astrophena.name/addheader/header"
	"go.astrophena.name/addheader/testutil"
)

var fixture = txtar.Parse([]byte(`
-- src/app.js --
console.log("hi");
-- src/bad.js --
/** eslint-disable */
foo();
-- src/lib/old.js --
/** Copyright 2020 Ultraleap, Inc. */

export const old = true;
-- src/notes.txt --
not a source file
`))

func fixedNow() time.Time { return time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC) }

func TestRun(t *testing.T) {
	setup := func(t *testing.T) *app {
		dir := t.TempDir()
		testutil.ExtractTxtar(t, fixture, dir)
		t.Chdir(dir)
		return &app{root: srcDir, now: fixedNow}
	}

	hdr := header.Build(2026)

	cases := map[string]clitest.Case[*app]{
		"adds and replaces headers": {
			WantInStdout: "Added Header to " + filepath.Join("src", "app.js") + "\n",
			CheckFunc: func(t *testing.T, a *app) {
				testutil.AssertEqual(t, testutil.ReadFile(t, filepath.Join("src", "app.js")), hdr+"console.log(\"hi\");\n")
				testutil.AssertEqual(t, testutil.ReadFile(t, filepath.Join("src", "lib", "old.js")), hdr+"export const old = true;\n")
				testutil.AssertEqual(t, testutil.ReadFile(t, filepath.Join("src", "notes.txt")), "not a source file\n")
			},
		},
		"warns about malformed headers": {
			WantInStderr: "path=" + filepath.Join("src", "bad.js"),
			CheckFunc: func(t *testing.T, a *app) {
				testutil.AssertEqual(t, testutil.ReadFile(t, filepath.Join("src", "bad.js")), "/** eslint-disable */\nfoo();\n")
			},
		},
		"rejects arguments": {
			Args:    []string{"lib"},
			WantErr: cli.ErrInvalidArgs,
			CheckFunc: func(t *testing.T, a *app) {
				testutil.AssertEqual(t, testutil.ReadFile(t, filepath.Join("src", "app.js")), "console.log(\"hi\");\n")
			},
		},
	}

	clitest.Run(t, setup, cases)
}

func TestRunWithoutSrc(t *testing.T) {
	setup := func(t *testing.T) *app {
		t.Chdir(t.TempDir())
		return &app{root: srcDir, now: fixedNow}
	}

	clitest.Run(t, setup, map[string]clitest.Case[*app]{
		"nothing to do": {
			WantNothingPrinted: true,
		},
	})
}
