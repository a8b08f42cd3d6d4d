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
	"net/http"
	"path"

	models_api "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/api"
	"github.com/gin-gonic/gin"
)

func postDeviceRebootH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(models_api.DevicePath, models_api.DeviceRebootPath), func(gc *gin.Context) {
		if err := a.service.Reboot(gc.Request.Context()); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusAccepted)
	}
}
