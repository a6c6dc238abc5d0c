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
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/DomZippilli/json-object-function/common"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Store keeps object media in process memory. It is meant for local runs and
// tests; objects never expire.
type Store struct {
	objects *cache.Cache
}

// New makes an empty Store.
func New() *Store {
	return &Store{objects: cache.New(cache.NoExpiration, 0)}
}

// Put stores a copy of media at address, replacing any previous object.
func (s *Store) Put(address common.ObjectAddress, media []byte) {
	s.objects.Set(address.String(), bytes.Clone(media), cache.NoExpiration)
}

// Delete removes the object at address, if any.
func (s *Store) Delete(address common.ObjectAddress) {
	s.objects.Delete(address.String())
}

// NewReader opens the media of the object at address.
func (s *Store) NewReader(ctx context.Context, address common.ObjectAddress) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	maybeMedia, hit := s.objects.Get(address.String())
	if !hit {
		return nil, common.NotExist(fmt.Errorf("memory get: no object %v", address))
	}
	media := maybeMedia.([]byte)
	log.Debug().Msgf("memory get: %v %vB", address, len(media))
	return io.NopCloser(bytes.NewReader(media)), nil
}
