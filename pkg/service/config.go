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
	"errors"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

func (s *Service) LoadConfig(ctx context.Context) models_mount_config.WorkingConfig {
	res := s.configStore.Load(ctx)
	if res.Degraded() {
		logger.Error("loading config failed", slog_attr.ErrorKey, res.Diagnostic)
		s.notify(s.text("config", "loadError", "Failed to load config"), models_service.ErrorNotification)
	}
	return res.Value
}

// SaveConfig persists cfg. The error is returned in addition to the notification.
func (s *Service) SaveConfig(ctx context.Context, cfg models_mount_config.WorkingConfig) error {
	if err := s.configStore.Save(ctx, cfg); err != nil {
		var iErr *models_error.InvalidInputErr
		if errors.As(err, &iErr) {
			logger.Warn("rejected invalid config", slog_attr.ErrorKey, err)
			s.notify(s.text("config", "invalidInput", "Invalid config"), models_service.ErrorNotification)
			return err
		}
		logger.Error("saving config failed", slog_attr.ErrorKey, err)
		s.notify(s.text("config", "saveError", "Failed to save config"), models_service.ErrorNotification)
		return err
	}
	s.notify(s.text("common", "saveSuccess", "Saved"), models_service.SuccessNotification)
	return nil
}

func (s *Service) SetConfig(cfg models_mount_config.WorkingConfig) {
	s.configStore.SetConfig(cfg)
}

func (s *Service) Config() models_mount_config.WorkingConfig {
	return s.configStore.Config()
}

func (s *Service) ConfigState() models_service.ConfigState {
	return models_service.ConfigState{
		State:   string(s.configStore.State()),
		Loading: s.configStore.Loading(),
		Saving:  s.configStore.Saving(),
		Dirty:   s.configStore.Dirty(),
		Digest:  s.configStore.Digest(),
	}
}
