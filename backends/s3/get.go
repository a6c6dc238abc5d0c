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
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DomZippilli/json-object-function/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

// Reader reads objects from S3 using the client made by Setup.
//
// S3 reports a missing key as 404 NoSuchKey only when the caller may list the
// bucket. A role without s3:ListBucket gets 403 AccessDenied instead, which
// is returned as an ordinary error and not as common.ErrObjectNotExist.
// Grant the function's role s3:ListBucket on the bucket to tell the two apart.
type Reader struct{}

// NewReader opens the media of the object at address.
func (Reader) NewReader(ctx context.Context, address common.ObjectAddress) (io.ReadCloser, error) {
	if client == nil {
		return nil, errors.New("s3: Setup was not called")
	}
	output, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(address.Bucket),
		Key:    aws.String(address.Key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, common.NotExist(err)
		}
		return nil, fmt.Errorf("s3 get: %w", err)
	}
	log.Debug().Msgf("s3 get: %v %vB %v", address, aws.ToInt64(output.ContentLength),
		aws.ToString(output.ContentType))
	return output.Body, nil
}

// isNotFound tests whether err means the bucket or key is missing.
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucket"
}
