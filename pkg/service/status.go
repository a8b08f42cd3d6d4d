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
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

func (s *Service) LoadStatus(ctx context.Context) models_status.Snapshot {
	s.mu.Lock()
	s.loadingStatus = true
	s.mu.Unlock()
	res := s.statusHdl.Refresh(ctx)
	s.mu.Lock()
	s.status = res.Value
	s.loadingStatus = false
	s.mu.Unlock()
	if res.Degraded() {
		logger.Warn("status incomplete", slog_attr.ErrorKey, res.Diagnostic)
		s.notify(s.text("status", "loadError", "Failed to load status"), models_service.ErrorNotification)
	}
	return res.Value
}

func (s *Service) Status() models_status.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
