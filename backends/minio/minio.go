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
package minio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DomZippilli/json-object-function/common"

	"github.com/minio/minio-go/v7"
	"github.com/rs/zerolog/log"
)

var client *minio.Client

// Setup performs one-time setup for the MinIO backend, which serves any
// S3-compatible endpoint.
func Setup(endpoint string, opts *minio.Options) error {
	var err error
	client, err = minio.New(endpoint, opts)
	if err != nil {
		return fmt.Errorf("minio setup: %w", err)
	}
	return nil
}

// Reader reads objects using the client made by Setup.
type Reader struct{}

// NewReader opens the media of the object at address. The first byte is
// peeked so that a missing object fails here rather than on a later Read,
// using the one GET that also carries the media.
func (Reader) NewReader(ctx context.Context, address common.ObjectAddress) (io.ReadCloser, error) {
	if client == nil {
		return nil, errors.New("minio: Setup was not called")
	}
	object, err := client.GetObject(ctx, address.Bucket, address.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio get: %w", err)
	}
	media := bufio.NewReader(object)
	if _, err := media.Peek(1); err != nil && err != io.EOF {
		object.Close()
		switch minio.ToErrorResponse(err).Code {
		case minio.NoSuchKey, minio.NoSuchBucket:
			return nil, common.NotExist(err)
		}
		return nil, fmt.Errorf("minio get: %w", err)
	}
	log.Debug().Msgf("minio get: %v", address)
	return objectMedia{Reader: media, Closer: object}, nil
}

// objectMedia reads through the peek buffer and closes the object.
type objectMedia struct {
	io.Reader
	io.Closer
}
