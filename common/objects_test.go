// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package common

import (
	"errors"
	"strings"
	"testing"
)

func TestLimitedReadAll(t *testing.T) {
	type TestCase struct {
		media   string
		limit   int64
		wantErr error
	}

	tcs := []TestCase{
		{"", 4, nil},
		{"abcd", 4, nil},
		// one byte over is too large
		{"abcde", 4, ErrObjectTooLarge},
	}

	for _, tc := range tcs {
		got, err := LimitedReadAll(strings.NewReader(tc.media), tc.limit)
		if tc.wantErr != nil {
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got: %v, want: %v", err, tc.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != tc.media {
			t.Fatalf("got: %q, want: %q", got, tc.media)
		}
	}
}

func TestNotExistKeepsCause(t *testing.T) {
	cause := errors.New("NoSuchKey")
	err := NotExist(cause)
	if !errors.Is(err, ErrObjectNotExist) {
		t.Fatalf("%v does not match ErrObjectNotExist", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("%v lost its cause", err)
	}
}
