// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications
// built with package cli.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/addheader/cli"
)

// Case describes a single run of an application under test.
type Case[T cli.App] struct {
	// Args are the command-line arguments, without the program name.
	Args []string
	// Stdin is the standard input. If nil, it is empty.
	Stdin io.Reader
	// Env holds the environment variables visible to the application.
	Env map[string]string

	// WantErr, if set, must match the returned error with errors.Is.
	WantErr error
	// WantErrType, if set, must match the returned error with errors.As.
	WantErrType error
	// WantInStdout and WantInStderr must be contained in the respective
	// output.
	WantInStdout string
	WantInStderr string
	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// CheckFunc, if set, is called after the application has run.
	CheckFunc func(*testing.T, T)
}

// Run runs a subtest for each case, creating a fresh application with setup.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Getenv: func(key string) string { return tc.Env[key] },
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc.WantErr, tc.WantErrType)

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 || stderr.Len() > 0 {
					t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
				}
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, wantErr, wantErrType error) {
	t.Helper()

	switch {
	case wantErr != nil:
		if !errors.Is(err, wantErr) {
			t.Fatalf("want error %v, got %v", wantErr, err)
		}
	case wantErrType != nil:
		target := reflect.New(reflect.TypeOf(wantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v", wantErrType, err)
		}
	case err != nil:
		t.Fatalf("unexpected error: %v", err)
	}
}
