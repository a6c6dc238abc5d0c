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
package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DomZippilli/json-object-function/common"

	"github.com/aws/aws-lambda-go/lambdacontext"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var errTrailingData = errors.New("data after top-level value")

// Response is the value an invocation returns to the platform.
type Response struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

// Handler serves the JSON document stored at one fixed address.
type Handler struct {
	reader  common.ObjectReader
	address common.ObjectAddress
	maxSize int64
}

// New makes a Handler that reads address with reader. Objects larger than
// maxSize bytes are refused.
func New(reader common.ObjectReader, address common.ObjectAddress, maxSize int64) *Handler {
	return &Handler{
		reader:  reader,
		address: address,
		maxSize: maxSize,
	}
}

// Handle is the function entry point. The event only appears in debug logs.
//
// Any failure is logged and returned; the returned error wraps the cause and
// names the bucket and key.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (Response, error) {
	logger := h.logger(ctx)
	if len(event) > 0 && json.Valid(event) {
		logger.Debug().RawJSON("event", event).Msg("received event")
	}

	body, err := h.load(ctx)
	if err != nil {
		logger.Error().Err(err).Send()
		logger.Error().Msgf("Error getting object %s from bucket %s. Make sure they exist "+
			"and your bucket is in the same region as this function.", h.address.Key, h.address.Bucket)
		return Response{}, fmt.Errorf("get object %s from bucket %s: %w",
			h.address.Key, h.address.Bucket, err)
	}
	logger.Info().Interface("body", body).Send()
	return Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}, nil
}

// logger returns the global logger with fields for this invocation.
func (h *Handler) logger(ctx context.Context) zerolog.Logger {
	lc := log.With().
		Str("bucket", h.address.Bucket).
		Str("key", h.address.Key)
	if meta, ok := lambdacontext.FromContext(ctx); ok {
		lc = lc.Str("request_id", meta.AwsRequestID)
	}
	return lc.Logger()
}

// load reads and parses the stored object.
func (h *Handler) load(ctx context.Context) (any, error) {
	media, err := h.reader.NewReader(ctx, h.address)
	if err != nil {
		return nil, err
	}
	defer media.Close()
	return Decode(media, h.maxSize)
}

// Decode reads at most limit bytes of UTF-8 JSON text from media and parses
// it as a single JSON value. Numbers are kept as json.Number so integers of
// any size come back unchanged.
func Decode(media io.Reader, limit int64) (any, error) {
	text, err := common.LimitedReadAll(transform.NewReader(media, encoding.UTF8Validator), limit)
	if err != nil {
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	// only whitespace may follow the value
	var rest json.RawMessage
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", errTrailingData)
	}
	return value, nil
}
