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
package config

import (
	"context"
	"testing"

	"github.com/DomZippilli/json-object-function/backends/memory"
	"github.com/DomZippilli/json-object-function/backends/minio"
	"github.com/DomZippilli/json-object-function/backends/s3"
)

func TestAddress(t *testing.T) {
	if Address.Bucket != "jnk-todo-tf" || Address.Key != "todo-data" {
		t.Fatalf("got: %v, want: jnk-todo-tf/todo-data", Address)
	}
	if MaxObjectSize != 6*1024*1024 {
		t.Fatalf("got: %v, want: %v", MaxObjectSize, 6*1024*1024)
	}
}

func TestNewBackend(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_REGION", "us-east-1")
	ctx := context.Background()

	type TestCase struct {
		name    string
		check   func(any) bool
		wantErr bool
	}

	tcs := []TestCase{
		{"s3", func(r any) bool { _, ok := r.(s3.Reader); return ok }, false},
		{"minio", func(r any) bool { _, ok := r.(minio.Reader); return ok }, false},
		{"memory", func(r any) bool { _, ok := r.(*memory.Store); return ok }, false},
		{"ftp", nil, true},
	}

	for _, tc := range tcs {
		reader, err := NewBackend(ctx, tc.name)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%v: expected an error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v: %v", tc.name, err)
		}
		if !tc.check(reader) {
			t.Fatalf("%v: got reader of type %T", tc.name, reader)
		}
	}
}
