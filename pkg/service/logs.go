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

	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

const logsErrorText = "Failed to load logs."

// LoadLogs reads the last n lines of the daemon log. A failed read yields a
// single error line.
func (s *Service) LoadLogs(ctx context.Context, n int) []models_logs.Line {
	s.mu.Lock()
	s.loadingLogs = true
	s.mu.Unlock()
	lines, err := s.logsHdl.Read(ctx, n)
	if err != nil {
		logger.Error("reading logs failed", slog_attr.ErrorKey, err)
		lines = []models_logs.Line{{Text: logsErrorText, Type: models_logs.ErrorLine}}
	}
	s.mu.Lock()
	s.logs = lines
	s.loadingLogs = false
	s.mu.Unlock()
	return lines
}

func (s *Service) Logs() []models_logs.Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs
}
