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

package mount_config

const (
	DefaultModuleDir   = "/data/adb/modules"
	DefaultMountSource = "KSU"
)

// Config is the record persisted in the daemon's configuration file.
type Config struct {
	ModuleDir   string   `json:"moduledir"`
	TempDir     string   `json:"tempdir"`
	MountSource string   `json:"mountsource"`
	Verbose     bool     `json:"verbose"`
	Umount      bool     `json:"umount"`
	Partitions  []string `json:"partitions"`
}

// WorkingConfig is the editable copy held in memory. DisableUmount presents the
// inverse of Umount to the form, the remaining flags only live for a session.
type WorkingConfig struct {
	Config
	DisableUmount bool `json:"disable_umount"`
	ForceExt4     bool `json:"force_ext4"`
	EnableNuke    bool `json:"enable_nuke"`
	DryRun        bool `json:"dry_run"`
}

func Default() Config {
	return Config{
		ModuleDir:   DefaultModuleDir,
		MountSource: DefaultMountSource,
		Partitions:  []string{},
	}
}
