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
	"github.com/DomZippilli/json-object-function/common"
)

// The stored document. These are fixed; the invocation event does not
// select them.
const (
	Bucket = "jnk-todo-tf"
	Key    = "todo-data"
)

// Address is where the handler reads the document from.
var Address = common.ObjectAddress{Bucket: Bucket, Key: Key}

// MaxObjectSize matches the Lambda response payload limit.
var MaxObjectSize = common.AsBytes(common.MB, 6)

// Environment selects log level and format. "development" gives debug level
// console output.
const Environment = "production"

// StorageBackend names the backend Backend sets up: "s3", "gcs", "minio" or
// "memory".
const StorageBackend = "s3"

// MinioEndpoint is used by the "minio" backend.
const MinioEndpoint = "s3.amazonaws.com"
