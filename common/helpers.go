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

import "fmt"

// ObjectAddress locates one object in object storage.
type ObjectAddress struct {
	Bucket string
	Key    string
}

func (a ObjectAddress) String() string {
	return fmt.Sprintf("%s/%s", a.Bucket, a.Key)
}

type ByteCount int

const (
	KB ByteCount = iota
	MB ByteCount = iota
	GB ByteCount = iota
	TB ByteCount = iota
	PB ByteCount = iota
)

// AsBytes takes a quantity of the given unit, and returns it in bytes.
func AsBytes(unit ByteCount, quantity int64) int64 {
	switch unit {
	case PB:
		return quantity * 1024 * 1024 * 1024 * 1024 * 1024
	case TB:
		return quantity * 1024 * 1024 * 1024 * 1024
	case GB:
		return quantity * 1024 * 1024 * 1024
	case MB:
		return quantity * 1024 * 1024
	default:
		// KB
		return quantity * 1024
	}
}
