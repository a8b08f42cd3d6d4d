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
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
	"golang.org/x/sys/unix"
)

var fsTypes = map[uint32]string{
	unix.EXT4_SUPER_MAGIC:      "ext4",
	unix.F2FS_SUPER_MAGIC:      "f2fs",
	unix.TMPFS_MAGIC:           "tmpfs",
	unix.BTRFS_SUPER_MAGIC:     "btrfs",
	unix.OVERLAYFS_SUPER_MAGIC: "overlay",
	unix.XFS_SUPER_MAGIC:       "xfs",
	unix.EROFS_SUPER_MAGIC_V1:  "erofs",
	unix.FUSE_SUPER_MAGIC:      "fuse",
}

// StorageUsage reports usage of the filesystem holding the module directory.
// Percent follows df and is rounded up.
func (h *Handler) StorageUsage(_ context.Context) (models_status.StorageUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(h.config.ModulesPath, &st); err != nil {
		return models_status.StorageUsage{}, models_error.NewTransportErr("statfs", "", err)
	}
	bSize := uint64(st.Bsize)
	total := st.Blocks * bSize
	used := (st.Blocks - st.Bfree) * bSize
	usage := models_status.StorageUsage{
		Percent:    strconv.FormatUint(usedPercent(st.Blocks-st.Bfree, st.Bavail), 10) + "%",
		Used:       bytefmt.ByteSize(used),
		Size:       bytefmt.ByteSize(total),
		UsedBytes:  used,
		TotalBytes: total,
	}
	// magic numbers overflow int32 on 32-bit platforms
	if t, ok := fsTypes[uint32(st.Type)]; ok {
		usage.Type = &t
	}
	return usage, nil
}

func usedPercent(used, avail uint64) uint64 {
	total := used + avail
	if total == 0 {
		return 0
	}
	return (used*100 + total - 1) / total
}
