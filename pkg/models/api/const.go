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

const (
	HeaderRequestID = "X-Request-ID"
	HeaderApiVer    = "X-Api-Version"
	HeaderSrvName   = "X-Service"
)

const (
	InfoPath          = "info"
	ConfigPath        = "config"
	ConfigReloadPath  = "reload"
	ConfigStatePath   = "state"
	ModulesPath       = "modules"
	ModulesScanPath   = "scan"
	ModulesStatsPath  = "stats"
	StatusPath        = "status"
	StatusRefreshPath = "refresh"
	LoadingPath       = "loading"
	LogsPath          = "logs"
	PreferencesPath   = "preferences"
	LocalesPath       = "locales"
	LocaleCodeParam   = "code"
	NotificationsPath = "notifications"
	DevicePath        = "device"
	DeviceRebootPath  = "reboot"
)
