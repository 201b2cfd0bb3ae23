// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addheader adds or updates the license header of JavaScript sources.

It recursively walks the ./src directory and processes every file whose name
ends with .js, ignoring case. A file that doesn't start with a block comment
gets the license header, stamped with the current year, prepended and is
reported on standard output:

	Added Header to src/main.js

A file that starts with a block comment followed by a blank line has that
comment replaced with the license header, silently. A file that starts with a
block comment of any other shape is left unchanged and a warning is logged to
standard error.

Files are rewritten in place. The first error stops the run; files processed
before it stay rewritten. A missing ./src directory is not an error.

It takes no arguments.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/addheader/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
