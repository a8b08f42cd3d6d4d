/*
 * Copyright 2026 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"errors"
	"net/http"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

func getStatusCode(err error) int {
	var iie *models_error.InvalidInputErr
	if errors.As(err, &iie) {
		return http.StatusBadRequest
	}
	if errors.Is(err, models_error.NotFoundErr) {
		return http.StatusNotFound
	}
	if errors.Is(err, models_error.NotSupportedErr) {
		return http.StatusNotImplemented
	}
	var se *models_error.SaveErr
	if errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	var de *models_error.DecodeErr
	if errors.As(err, &de) {
		return http.StatusBadGateway
	}
	var te *models_error.TransportErr
	if errors.As(err, &te) {
		return http.StatusBadGateway
	}
	return 0
}
