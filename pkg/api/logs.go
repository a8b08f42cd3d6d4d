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
	"fmt"
	"net/http"

	models_api "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/api"
	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	"github.com/gin-gonic/gin"
)

type logsQuery struct {
	Lines int `form:"lines"`
}

func getLogsH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models_api.LogsPath, func(gc *gin.Context) {
		var query logsQuery
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(models_error.NewInvalidInputErr(err))
			return
		}
		if query.Lines < 0 {
			_ = gc.Error(models_error.NewInvalidInputErr(errors.New("lines must not be negative")))
			return
		}
		if query.Lines > models_logs.MaxLines {
			_ = gc.Error(models_error.NewInvalidInputErr(fmt.Errorf("lines must not exceed %d", models_logs.MaxLines)))
			return
		}
		gc.JSON(http.StatusOK, a.service.LoadLogs(gc.Request.Context(), query.Lines))
	}
}
