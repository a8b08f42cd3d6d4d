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

import (
	"context"
	"fmt"
	"sync"
	"time"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
	"golang.org/x/sync/errgroup"
)

// Handler aggregates device, daemon and storage status into snapshots.
type Handler struct {
	deviceHdl  deviceHandler
	daemonClt  daemonClient
	modulesHdl modulesHandler
}

func New(deviceHdl deviceHandler, daemonClt daemonClient, modulesHdl modulesHandler) *Handler {
	return &Handler{
		deviceHdl:  deviceHdl,
		daemonClt:  daemonClt,
		modulesHdl: modulesHdl,
	}
}

// Refresh issues all queries together and waits for each to settle. A failed
// query leaves its placeholder in the snapshot and adds to the diagnostic.
// If no module listing was loaded yet, one scan is triggered afterward.
func (h *Handler) Refresh(ctx context.Context) models_result.Result[models_status.Snapshot] {
	identity := models_status.PlaceholderDeviceIdentity()
	version := models_status.Placeholder
	storage := models_status.PlaceholderStorageUsage()
	sysInfo := models_status.PlaceholderSystemInfo()
	var errs []error
	var mu sync.Mutex
	addErr := func(step string, err error) {
		logger.Warn("status query failed", slog_attr.StepKey, step, slog_attr.ErrorKey, err)
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", step, err))
		mu.Unlock()
	}
	var eg errgroup.Group
	eg.Go(func() error {
		v, err := h.deviceHdl.DeviceIdentity(ctx)
		if err != nil {
			addErr("device identity", err)
			return nil
		}
		identity = v
		return nil
	})
	eg.Go(func() error {
		v, err := h.daemonClt.Version(ctx)
		if err != nil {
			addErr("version", err)
			return nil
		}
		version = v
		return nil
	})
	eg.Go(func() error {
		v, err := h.deviceHdl.StorageUsage(ctx)
		if err != nil {
			addErr("storage usage", err)
			return nil
		}
		storage = v
		return nil
	})
	eg.Go(func() error {
		v, err := h.deviceHdl.SystemInfo(ctx)
		if err != nil {
			addErr("system info", err)
			return nil
		}
		if v.ActiveMounts == nil {
			v.ActiveMounts = []string{}
		}
		sysInfo = v
		return nil
	})
	_ = eg.Wait()
	if !h.modulesHdl.Loaded() {
		logger.Debug("module listing not loaded, scanning")
		h.modulesHdl.Load(ctx)
	}
	snapshot := models_status.Snapshot{
		Device: models_status.Device{
			DeviceIdentity: identity,
			Kernel:         sysInfo.Kernel,
			SELinux:        sysInfo.SELinux,
		},
		Version:          version,
		Storage:          storage,
		SystemInfo:       sysInfo,
		ActivePartitions: append(make([]string, 0, len(sysInfo.ActiveMounts)), sysInfo.ActiveMounts...),
		Refreshed:        time.Now().UTC(),
	}
	if len(errs) > 0 {
		return models_result.Degraded(snapshot, models_error.NewMultiError(errs))
	}
	return models_result.Ok(snapshot)
}
