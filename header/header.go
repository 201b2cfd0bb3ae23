// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header renders the license header and applies it to the text of a
// source file.
package header

import (
	"errors"
	"fmt"
	"strings"
)

const tmpl = `/**
 * Copyright %d Ultraleap, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

`

// Build returns the license header for year.
//
// The header is a block comment followed by a blank line, so its own leading
// span (see [Span]) is the whole header.
func Build(year int) string { return fmt.Sprintf(tmpl, year) }

const (
	commentOpen  = "/*"
	commentClose = "*/"
	blankLine    = "\n\n"
)

var (
	// ErrUnterminated is returned by [Span] when the leading block comment is
	// never closed.
	ErrUnterminated = errors.New("leading block comment is never closed")
	// ErrNoBlankLine is returned by [Span] when the leading block comment is
	// not followed by a blank line.
	ErrNoBlankLine = errors.New("leading block comment is not followed by a blank line")
)

// HasHeader reports whether text starts with a block comment.
func HasHeader(text string) bool { return strings.HasPrefix(text, commentOpen) }

// Span returns the length of the leading header span of text: the block
// comment that opens at byte 0, closed by the first "*/" after it, and the two
// newlines that must follow it.
//
// It returns an error wrapping [ErrUnterminated] or [ErrNoBlankLine] if text
// starts with a block comment of any other shape, and 0 and no error if text
// doesn't start with a block comment at all.
func Span(text string) (int, error) {
	if !HasHeader(text) {
		return 0, nil
	}
	i := strings.Index(text[len(commentOpen):], commentClose)
	if i < 0 {
		return 0, ErrUnterminated
	}
	end := len(commentOpen) + i + len(commentClose)
	if !strings.HasPrefix(text[end:], blankLine) {
		return 0, fmt.Errorf("%w (comment ends at byte %d)", ErrNoBlankLine, end)
	}
	return end + len(blankLine), nil
}

// Action describes what [Update] did to a file's text.
type Action int

const (
	// Added means the text had no header and one was prepended.
	Added Action = iota
	// Replaced means the leading header span was replaced.
	Replaced
	// Malformed means the text starts with a block comment that doesn't have
	// the shape of a header. The text is left unchanged.
	Malformed
)

func (a Action) String() string {
	switch a {
	case Added:
		return "added"
	case Replaced:
		return "replaced"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Result is the outcome of [Update].
type Result struct {
	Text   string
	Action Action
	// Err explains why the header is malformed. It is nil unless Action is
	// Malformed.
	Err error
}

// Update applies hdr to text. Text without a leading block comment gets hdr
// prepended; text with a well-formed leading header span gets that span
// replaced with hdr.
func Update(text, hdr string) Result {
	if !HasHeader(text) {
		return Result{Text: hdr + text, Action: Added}
	}
	n, err := Span(text)
	if err != nil {
		return Result{Text: text, Action: Malformed, Err: err}
	}
	return Result{Text: hdr + text[n:], Action: Replaced}
}
