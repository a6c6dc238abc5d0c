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
	"errors"
	"net/http"

	"github.com/DomZippilli/json-object-function/common"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// ServeHTTP exposes Handle over HTTP for hosts that invoke functions with
// requests, such as Cloud Run. GET runs one invocation and writes the
// Response as JSON.
func (h *Handler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	// route HTTP methods to appropriate handlers
	switch request.Method {
	case http.MethodGet:
		h.get(response, request)
	default:
		http.Error(response, "405 - Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) get(response http.ResponseWriter, request *http.Request) {
	result, err := h.Handle(request.Context(), nil)
	if err != nil {
		if errors.Is(err, common.ErrObjectNotExist) {
			http.Error(response, "404 - Not Found", http.StatusNotFound)
			return
		}
		http.Error(response, "500 - Internal Server Error", http.StatusInternalServerError)
		return
	}
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(result.StatusCode)
	if err := json.NewEncoder(response).Encode(result); err != nil {
		log.Error().Msgf("serve: %v", err)
	}
}
