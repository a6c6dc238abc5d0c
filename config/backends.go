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
	"fmt"

	"github.com/DomZippilli/json-object-function/backends/gcs"
	"github.com/DomZippilli/json-object-function/backends/memory"
	"github.com/DomZippilli/json-object-function/backends/minio"
	"github.com/DomZippilli/json-object-function/backends/s3"
	"github.com/DomZippilli/json-object-function/common"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// Backend sets up the configured storage backend. Main calls this once per
// process; the result is shared by all invocations.
func Backend(ctx context.Context) (common.ObjectReader, error) {
	return NewBackend(ctx, StorageBackend)
}

// NewBackend sets up the named storage backend.
func NewBackend(ctx context.Context, name string) (common.ObjectReader, error) {
	switch name {
	case "s3":
		if err := s3.Setup(ctx); err != nil {
			return nil, err
		}
		return s3.Reader{}, nil
	case "gcs":
		if err := gcs.Setup(ctx); err != nil {
			return nil, fmt.Errorf("gcs setup: %w", err)
		}
		return gcs.Reader{}, nil
	case "minio":
		err := minio.Setup(MinioEndpoint, &miniogo.Options{
			Creds:  credentials.NewEnvAWS(),
			Secure: true,
		})
		if err != nil {
			return nil, err
		}
		return minio.Reader{}, nil
	case "memory":
		log.Warn().Msg("memory backend starts empty; objects must be Put before use")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
}
