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

package status

import "time"

const (
	Placeholder        = "-"
	PercentPlaceholder = "0%"
	UnknownValue       = "Unknown"
)

type DeviceIdentity struct {
	Model   string `json:"model"`
	Android string `json:"android"`
}

type Device struct {
	DeviceIdentity
	Kernel  string `json:"kernel"`
	SELinux string `json:"selinux"`
}

type SystemInfo struct {
	Kernel           string   `json:"kernel"`
	SELinux          string   `json:"selinux"`
	MountBase        string   `json:"mount_base"`
	MountBaseContext string   `json:"mount_base_context,omitempty"`
	ActiveMounts     []string `json:"active_mounts"`
}

type StorageUsage struct {
	Type       *string `json:"type"`
	Percent    string  `json:"percent"`
	Used       string  `json:"used"`
	Size       string  `json:"size"`
	UsedBytes  uint64  `json:"used_bytes"`
	TotalBytes uint64  `json:"total_bytes"`
}

type Snapshot struct {
	Device           Device       `json:"device"`
	Version          string       `json:"version"`
	Storage          StorageUsage `json:"storage"`
	SystemInfo       SystemInfo   `json:"system_info"`
	ActivePartitions []string     `json:"active_partitions"`
	Refreshed        time.Time    `json:"refreshed"`
}

func PlaceholderDeviceIdentity() DeviceIdentity {
	return DeviceIdentity{
		Model:   Placeholder,
		Android: Placeholder,
	}
}

func PlaceholderSystemInfo() SystemInfo {
	return SystemInfo{
		Kernel:       Placeholder,
		SELinux:      Placeholder,
		MountBase:    Placeholder,
		ActiveMounts: []string{},
	}
}

func PlaceholderStorageUsage() StorageUsage {
	return StorageUsage{
		Percent: PercentPlaceholder,
		Used:    Placeholder,
		Size:    Placeholder,
	}
}

// Initial is presented before the first refresh completes.
func Initial() Snapshot {
	sysInfo := PlaceholderSystemInfo()
	return Snapshot{
		Device: Device{
			DeviceIdentity: PlaceholderDeviceIdentity(),
			Kernel:         Placeholder,
			SELinux:        Placeholder,
		},
		Version:          "...",
		Storage:          PlaceholderStorageUsage(),
		SystemInfo:       sysInfo,
		ActivePartitions: []string{},
	}
}
