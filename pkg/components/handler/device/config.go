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

package device

type Config struct {
	ModulesPath    string `json:"modules_path" env_var:"MODULES_PATH"`
	SELinuxFSPath  string `json:"selinuxfs_path" env_var:"SELINUXFS_PATH"`
	DaemonModuleID string `json:"daemon_module_id" env_var:"DAEMON_MODULE_ID"`
}
