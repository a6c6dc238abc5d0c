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
package gcs

import (
	"context"

	storage "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var gcs *storage.Client

// Setup performs one-time setup for the GCS backend.
func Setup(ctx context.Context, opts ...option.ClientOption) error {
	// initialize the client
	var err error
	gcs, err = storage.NewClient(ctx, opts...)
	if err != nil {
		return err
	}
	return nil
}
