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
package main

import (
	"context"

	"github.com/DomZippilli/json-object-function/common"
	"github.com/DomZippilli/json-object-function/config"
	"github.com/DomZippilli/json-object-function/handler"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
)

func main() {
	common.SetupLogging(config.Environment, nil)
	log.Info().Msg("Loading function")

	// the storage client is made once and reused by every invocation
	reader, err := config.Backend(context.Background())
	if err != nil {
		log.Fatal().Msgf("setup: %v", err)
	}
	h := handler.New(reader, config.Address, config.MaxObjectSize)
	lambda.Start(h.Handle)
}
