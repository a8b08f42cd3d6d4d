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

	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

type deviceHandler interface {
	DeviceIdentity(ctx context.Context) (models_status.DeviceIdentity, error)
	SystemInfo(ctx context.Context) (models_status.SystemInfo, error)
	StorageUsage(ctx context.Context) (models_status.StorageUsage, error)
}

type daemonClient interface {
	Version(ctx context.Context) (string, error)
}

type modulesHandler interface {
	Loaded() bool
	Load(ctx context.Context) models_result.Result[[]models_module.Module]
}
