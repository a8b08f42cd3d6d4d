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

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

const (
	enforceFile    = "enforce"
	selinuxXattr   = "security.selinux"
	enforcingMode  = "Enforcing"
	permissiveMode = "Permissive"
	disabledMode   = "Disabled"
)

// SystemInfo reports kernel release, SELinux mode and the modules present in the
// module directory. The daemon's own module is not listed.
func (h *Handler) SystemInfo(_ context.Context) (models_status.SystemInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return models_status.SystemInfo{}, models_error.NewTransportErr("uname", "", err)
	}
	selinux, err := h.selinuxMode()
	if err != nil {
		return models_status.SystemInfo{}, err
	}
	mounts, err := h.activeMounts()
	if err != nil {
		return models_status.SystemInfo{}, err
	}
	return models_status.SystemInfo{
		Kernel:           unix.ByteSliceToString(uts.Release[:]),
		SELinux:          selinux,
		MountBase:        h.config.ModulesPath,
		MountBaseContext: h.selinuxLabel(h.config.ModulesPath),
		ActiveMounts:     mounts,
	}, nil
}

func (h *Handler) selinuxMode() (string, error) {
	b, err := os.ReadFile(path.Join(h.config.SELinuxFSPath, enforceFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return disabledMode, nil
		}
		return "", models_error.NewTransportErr("selinuxfs", "", err)
	}
	switch strings.TrimSpace(string(b)) {
	case "1":
		return enforcingMode, nil
	case "0":
		return permissiveMode, nil
	default:
		return models_status.UnknownValue, nil
	}
}

func (h *Handler) activeMounts() ([]string, error) {
	entries, err := os.ReadDir(h.config.ModulesPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, models_error.NewTransportErr("modules", "", err)
	}
	mounts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == h.config.DaemonModuleID {
			continue
		}
		mounts = append(mounts, entry.Name())
	}
	return mounts, nil
}

// selinuxLabel is best effort, filesystems without labels yield an empty string.
func (h *Handler) selinuxLabel(p string) string {
	b, err := xattr.LGet(p, selinuxXattr)
	if err != nil {
		logger.Debug("reading selinux label failed", slog_attr.PathKey, p, slog_attr.ErrorKey, err)
		return ""
	}
	return strings.TrimRight(string(b), "\x00")
}
