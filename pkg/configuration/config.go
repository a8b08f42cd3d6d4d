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

package configuration

import (
	"time"

	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	handler_daemon "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/daemon"
	handler_device "github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/handler/device"
)

type FilesConfig struct {
	MountConfigPath string `json:"mount_config_path" env_var:"MOUNT_CONFIG_PATH"`
	LogFilePath     string `json:"log_file_path" env_var:"LOG_FILE_PATH"`
	PreferencesPath string `json:"preferences_path" env_var:"PREFERENCES_PATH"`
	LocalesPath     string `json:"locales_path" env_var:"LOCALES_PATH"`
}

type Config struct {
	ServerPort    uint                  `json:"server_port" env_var:"SERVER_PORT"`
	Logger        struct_logger.Config  `json:"logger"`
	Files         FilesConfig           `json:"files"`
	Daemon        handler_daemon.Config `json:"daemon"`
	Device        handler_device.Config `json:"device"`
	HttpAccessLog bool                  `json:"http_access_log" env_var:"HTTP_ACCESS_LOG"`
}

func New(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 8080,
		Logger: struct_logger.Config{
			Handler:    struct_logger.TextHandlerSelector,
			Level:      struct_logger.LevelInfo,
			TimeFormat: time.RFC3339Nano,
			TimeUtc:    true,
			AddMeta:    false,
		},
		Files: FilesConfig{
			MountConfigPath: "/data/adb/magic_mount/config.toml",
			LogFilePath:     "/data/adb/magic_mount/mm.log",
			PreferencesPath: "/data/adb/magic_mount/webui.yaml",
			LocalesPath:     "/data/adb/modules/magic_mount_rs/webroot/locales",
		},
		Daemon: handler_daemon.Config{
			BinPath: "/data/adb/modules/magic_mount_rs/meta-mm",
		},
		Device: handler_device.Config{
			ModulesPath:    "/data/adb/modules",
			SELinuxFSPath:  "/sys/fs/selinux",
			DaemonModuleID: "magic_mount_rs",
		},
	}
	err := sb_config_hdl.Load(&cfg, nil, nil, nil, path)
	return &cfg, err
}
