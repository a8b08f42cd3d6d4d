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

import gin_mw "github.com/SENERGY-Platform/gin-middleware"

var routes = gin_mw.Routes[*Api]{
	getInfoH,
	getConfigH,
	putConfigH,
	patchConfigH,
	postConfigReloadH,
	getConfigStateH,
	getModulesH,
	putModulesH,
	postModulesScanH,
	getModulesStatsH,
	getStatusH,
	postStatusRefreshH,
	getLoadingH,
	getLogsH,
	getPreferencesH,
	putPreferencesH,
	getLocalesH,
	getLocaleH,
	getNotificationsH,
	postDeviceRebootH,
}
