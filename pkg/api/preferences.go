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
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	"github.com/gin-gonic/gin"
)

func getPreferencesH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models_api.PreferencesPath, func(gc *gin.Context) {
		gc.JSON(http.StatusOK, a.service.Preferences())
	}
}

func putPreferencesH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodPut, models_api.PreferencesPath, func(gc *gin.Context) {
		var prefs models_preferences.Preferences
		if err := gc.ShouldBindJSON(&prefs); err != nil {
			_ = gc.Error(models_error.NewInvalidInputErr(err))
			return
		}
		if err := a.service.SetPreferences(gc.Request.Context(), prefs); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, a.service.Preferences())
	}
}

func getLocalesH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, models_api.LocalesPath, func(gc *gin.Context) {
		locales, err := a.service.Locales()
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, locales)
	}
}

func getLocaleH(a *Api) (string, string, gin.HandlerFunc) {
	return http.MethodGet, path.Join(models_api.LocalesPath, ":"+models_api.LocaleCodeParam), func(gc *gin.Context) {
		catalog, err := a.service.Locale(gc.Param(models_api.LocaleCodeParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, catalog)
	}
}
