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
package memory

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/DomZippilli/json-object-function/common"
)

func TestStorePutAndRead(t *testing.T) {
	ctx := context.Background()
	address := common.ObjectAddress{Bucket: "b", Key: "k"}
	store := New()

	media := []byte(`{"a":1}`)
	store.Put(address, media)
	// the store keeps its own copy
	media[0] = 'X'

	r, err := store.NewReader(ctx, address)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("got: %s, want: %s", got, `{"a":1}`)
	}
}

func TestStoreMissingObject(t *testing.T) {
	ctx := context.Background()
	address := common.ObjectAddress{Bucket: "b", Key: "k"}
	store := New()
	store.Put(address, []byte("{}"))
	store.Delete(address)

	_, err := store.NewReader(ctx, address)
	if !errors.Is(err, common.ErrObjectNotExist) {
		t.Fatalf("got: %v, want: %v", err, common.ErrObjectNotExist)
	}
}

func TestStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := New()
	_, err := store.NewReader(ctx, common.ObjectAddress{Bucket: "b", Key: "k"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got: %v, want: %v", err, context.Canceled)
	}
}
