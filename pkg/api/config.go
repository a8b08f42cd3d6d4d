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
	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	"github.com/gin-gonic/gin"
)

const (
	etagHeader        = "ETag"
	ifNoneMatchHeader = "If-None-Match"
)

func getConfigH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models_api.ConfigPath, func(gc *gin.Context) {
		etag := `"` + a.service.ConfigState().Digest + `"`
		gc.Header(etagHeader, etag)
		if gc.GetHeader(ifNoneMatchHeader) == etag {
			gc.Status(http.StatusNotModified)
			return
		}
		gc.JSON(http.StatusOK, a.service.Config())
	}
}

func putConfigH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPut, models_api.ConfigPath, func(gc *gin.Context) {
		var cfg models_mount_config.WorkingConfig
		if err := gc.ShouldBindJSON(&cfg); err != nil {
			_ = gc.Error(models_error.NewInvalidInputErr(err))
			return
		}
		if cfg.Partitions == nil {
			cfg.Partitions = []string{}
		}
		if err := a.service.SaveConfig(gc.Request.Context(), cfg); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, a.service.Config())
	}
}

func patchConfigH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPatch, models_api.ConfigPath, func(gc *gin.Context) {
		cfg := a.service.Config()
		if err := gc.ShouldBindJSON(&cfg); err != nil {
			_ = gc.Error(models_error.NewInvalidInputErr(err))
			return
		}
		a.service.SetConfig(cfg)
		gc.JSON(http.StatusOK, a.service.ConfigState())
	}
}

func postConfigReloadH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(models_api.ConfigPath, models_api.ConfigReloadPath), func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.LoadConfig(gc.Request.Context()))
	}
}

func getConfigStateH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(models_api.ConfigPath, models_api.ConfigStatePath), func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.ConfigState())
	}
}
