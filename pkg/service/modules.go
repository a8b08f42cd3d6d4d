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

package service

import (
	"context"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

func (s *Service) LoadModules(ctx context.Context) []models_module.Module {
	res := s.modulesHdl.Load(ctx)
	if res.Degraded() {
		logger.Error("loading modules failed", slog_attr.ErrorKey, res.Diagnostic)
		s.notify(s.text("modules", "loadError", "Failed to load modules"), models_service.ErrorNotification)
	}
	return res.Value
}

func (s *Service) Modules() []models_module.Module {
	return s.modulesHdl.Modules()
}

func (s *Service) ModeStats() models_module.ModeStats {
	return s.modulesHdl.Stats()
}

// SaveModules is not available, per-module rules are not persisted by the daemon.
func (s *Service) SaveModules(_ context.Context) error {
	s.notify(s.text("modules", "notSupported", "Not supported in this version"), models_service.InfoNotification)
	return models_error.NotSupportedErr
}
