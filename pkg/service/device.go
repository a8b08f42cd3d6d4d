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

	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

func (s *Service) Reboot(ctx context.Context) error {
	logger.Warn("rebooting device")
	if err := s.deviceHdl.Reboot(ctx); err != nil {
		logger.Error("rebooting device failed", slog_attr.ErrorKey, err)
		s.notify(s.text("common", "rebootError", "Failed to reboot"), models_service.ErrorNotification)
		return err
	}
	return nil
}
