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
	"errors"
	"fmt"
	"io"

	"github.com/DomZippilli/json-object-function/common"

	storage "cloud.google.com/go/storage"
	"github.com/rs/zerolog/log"
)

// Reader reads objects from GCS using the client made by Setup.
type Reader struct{}

// NewReader opens the media of the object at address.
func (Reader) NewReader(ctx context.Context, address common.ObjectAddress) (io.ReadCloser, error) {
	if gcs == nil {
		return nil, errors.New("gcs: Setup was not called")
	}
	objectHandle := gcs.Bucket(address.Bucket).Object(address.Key)
	objectContent, err := objectHandle.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, common.NotExist(err)
		}
		return nil, fmt.Errorf("gcs get: %w", err)
	}
	log.Debug().Msgf("gcs get: %v %vB %v", address, objectContent.Attrs.Size,
		objectContent.Attrs.ContentType)
	return objectContent, nil
}
