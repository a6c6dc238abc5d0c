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
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrObjectNotExist is matched by the errors backends return for a missing
// bucket or object.
var ErrObjectNotExist = errors.New("object does not exist")

// ErrObjectTooLarge is returned by LimitedReadAll when an object is bigger
// than the permitted size.
var ErrObjectTooLarge = errors.New("object too large")

// ObjectReader opens the media of a stored object. Implementations must be
// safe for concurrent use.
type ObjectReader interface {
	NewReader(ctx context.Context, address ObjectAddress) (io.ReadCloser, error)
}

// NotExist marks err as a missing object, keeping err in the chain.
func NotExist(err error) error {
	return fmt.Errorf("%w: %w", ErrObjectNotExist, err)
}

// LimitedReadAll reads media up to limit bytes. Longer media is an error.
func LimitedReadAll(media io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(media, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%w: more than %vB", ErrObjectTooLarge, limit)
	}
	return b, nil
}
