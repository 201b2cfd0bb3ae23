// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"testing"

	"go.astrophena.name/addheader/testutil"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want string
	}{
		"devel": {
			in:   Info{Name: "addheader", Go: "go1.26.0", OS: "linux", Arch: "amd64"},
			want: "addheader (devel) (go1.26.0, linux/amd64)\n",
		},
		"commit": {
			in:   Info{Name: "addheader", Commit: "0123456789ab", Go: "go1.26.0", OS: "linux", Arch: "arm64"},
			want: "addheader 0123456789ab (go1.26.0, linux/arm64)\n",
		},
		"dirty": {
			in:   Info{Name: "addheader", Commit: "0123456789ab", Dirty: true, Go: "go1.26.0", OS: "darwin", Arch: "arm64"},
			want: "addheader 0123456789ab-dirty (go1.26.0, darwin/arm64)\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestVersionIsStable(t *testing.T) {
	testutil.AssertEqual(t, Version(), Version())
	testutil.AssertEqual(t, Version().Name, CmdName())
}
