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

func getModulesH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models_api.ModulesPath, func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.Modules())
	}
}

func putModulesH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPut, models_api.ModulesPath, func(gc *gin.Context) {
		if err := a.service.SaveModules(gc.Request.Context()); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postModulesScanH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPost, path.Join(models_api.ModulesPath, models_api.ModulesScanPath), func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.LoadModules(gc.Request.Context()))
	}
}

func getModulesStatsH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(models_api.ModulesPath, models_api.ModulesStatsPath), func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.ModeStats())
	}
}
