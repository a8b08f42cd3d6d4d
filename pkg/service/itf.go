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

package service

import (
	"context"

	handler_config_store "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/config_store"
	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

type ConfigStore interface {
	Load(ctx context.Context) models_result.Result[models_mount_config.WorkingConfig]
	Save(ctx context.Context, cfg models_mount_config.WorkingConfig) error
	Config() models_mount_config.WorkingConfig
	SetConfig(cfg models_mount_config.WorkingConfig)
	State() handler_config_store.State
	Loading() bool
	Saving() bool
	Dirty() bool
	Digest() string
}

type ModulesHandler interface {
	Load(ctx context.Context) models_result.Result[[]models_module.Module]
	Modules() []models_module.Module
	Loading() bool
	Stats() models_module.ModeStats
}

type StatusHandler interface {
	Refresh(ctx context.Context) models_result.Result[models_status.Snapshot]
}

type LogsHandler interface {
	Read(ctx context.Context, n int) ([]models_logs.Line, error)
}

type PreferencesHandler interface {
	Load(ctx context.Context) models_result.Result[models_preferences.Preferences]
	Save(ctx context.Context, prefs models_preferences.Preferences) error
	Preferences() models_preferences.Preferences
}

type LocalesHandler interface {
	List() ([]models_preferences.Locale, error)
	Load(code string) (map[string]any, error)
}

type ThemeHandler interface {
	SystemColor(ctx context.Context) (string, error)
}

type DeviceHandler interface {
	Reboot(ctx context.Context) error
}
