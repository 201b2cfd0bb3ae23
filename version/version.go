// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides build information of the running program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/addheader/syncx"
)

// Info describes a program build.
type Info struct {
	// Name is the program name.
	Name string
	// Commit is the VCS revision the program was built from, if known.
	Commit string
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool
	// Go is the Go version used to build the program.
	Go string
	// OS and Arch are the target platform.
	OS, Arch string
}

// String returns a human-readable representation of i, terminated by a
// newline.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ", i.Name)
	switch {
	case i.Commit == "":
		sb.WriteString("(devel)")
	case i.Dirty:
		fmt.Fprintf(&sb, "%s-dirty", i.Commit)
	default:
		sb.WriteString(i.Commit)
	}
	fmt.Fprintf(&sb, " (%s, %s/%s)\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information of the running program.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name: CmdName(),
			Go:   runtime.Version(),
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
				if len(i.Commit) > 12 {
					i.Commit = i.Commit[:12]
				}
			case "vcs.modified":
				i.Dirty = s.Value == "true"
			}
		}
		return i
	})
}

// CmdName returns the base name of the running program's executable.
func CmdName() string {
	name := filepath.Base(os.Args[0])
	return strings.TrimSuffix(name, ".exe")
}
