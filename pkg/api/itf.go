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
	"context"

	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

type serviceItf interface {
	LoadConfig(ctx context.Context) models_mount_config.WorkingConfig
	SaveConfig(ctx context.Context, cfg models_mount_config.WorkingConfig) error
	SetConfig(cfg models_mount_config.WorkingConfig)
	Config() models_mount_config.WorkingConfig
	ConfigState() models_service.ConfigState
	LoadModules(ctx context.Context) []models_module.Module
	Modules() []models_module.Module
	ModeStats() models_module.ModeStats
	SaveModules(ctx context.Context) error
	LoadStatus(ctx context.Context) models_status.Snapshot
	Status() models_status.Snapshot
	Loading() models_service.Loading
	LoadLogs(ctx context.Context, n int) []models_logs.Line
	Preferences() models_preferences.Preferences
	SetPreferences(ctx context.Context, prefs models_preferences.Preferences) error
	Locales() ([]models_preferences.Locale, error)
	Locale(code string) (map[string]any, error)
	Notifications() []models_service.Notification
	Reboot(ctx context.Context) error
}

type infoHandler interface {
	ServiceInfo() srv_info_hdl.ServiceInfo
	Version() string
	Name() string
}
