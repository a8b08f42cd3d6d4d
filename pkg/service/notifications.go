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
	"time"

	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	"github.com/google/uuid"
)

// Notifications returns the notifications posted within NotificationTTL.
func (s *Service) Notifications() []models_service.Notification {
	s.nMu.Lock()
	defer s.nMu.Unlock()
	s.pruneNotifications(time.Now())
	return append([]models_service.Notification{}, s.notifications...)
}

func (s *Service) notify(text string, nType models_service.NotificationType) {
	now := time.Now()
	s.nMu.Lock()
	defer s.nMu.Unlock()
	s.pruneNotifications(now)
	s.notifications = append(s.notifications, models_service.Notification{
		ID:      uuid.NewString(),
		Text:    text,
		Type:    nType,
		Created: now,
	})
}

func (s *Service) pruneNotifications(now time.Time) {
	var visible []models_service.Notification
	for _, n := range s.notifications {
		if now.Sub(n.Created) < NotificationTTL {
			visible = append(visible, n)
		}
	}
	s.notifications = visible
}
