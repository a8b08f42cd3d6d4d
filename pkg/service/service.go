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
	"sync"
	"time"

	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
	"golang.org/x/sync/errgroup"
)

const NotificationTTL = time.Second * 3

// Service is the session of a control panel. Each snapshot it holds is
// replaced as a whole when the operation producing it completes.
type Service struct {
	configStore   ConfigStore
	modulesHdl    ModulesHandler
	statusHdl     StatusHandler
	logsHdl       LogsHandler
	prefsHdl      PreferencesHandler
	localesHdl    LocalesHandler
	themeHdl      ThemeHandler
	deviceHdl     DeviceHandler
	status        models_status.Snapshot
	logs          []models_logs.Line
	locale        map[string]any
	systemColor   string
	notifications []models_service.Notification
	loadingLogs   bool
	loadingStatus bool
	mu            sync.RWMutex
	nMu           sync.Mutex
}

func New(configStore ConfigStore, modulesHdl ModulesHandler, statusHdl StatusHandler, logsHdl LogsHandler, prefsHdl PreferencesHandler, localesHdl LocalesHandler, themeHdl ThemeHandler, deviceHdl DeviceHandler) *Service {
	return &Service{
		configStore: configStore,
		modulesHdl:  modulesHdl,
		statusHdl:   statusHdl,
		logsHdl:     logsHdl,
		prefsHdl:    prefsHdl,
		localesHdl:  localesHdl,
		themeHdl:    themeHdl,
		deviceHdl:   deviceHdl,
		status:      models_status.Initial(),
		logs:        []models_logs.Line{},
		locale:      map[string]any{},
	}
}

// Init loads preferences, locale and system colour in that order, then loads the
// configuration and refreshes the status concurrently. Failures are recovered
// by the individual steps.
func (s *Service) Init(ctx context.Context) {
	prefs := s.loadPreferences(ctx)
	s.loadLocale(prefs.Lang)
	s.loadSystemColor(ctx)
	var eg errgroup.Group
	eg.Go(func() error {
		s.LoadConfig(ctx)
		return nil
	})
	eg.Go(func() error {
		s.LoadStatus(ctx)
		return nil
	})
	_ = eg.Wait()
	logger.Info("session initialized")
}

func (s *Service) Loading() models_service.Loading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models_service.Loading{
		Config:  s.configStore.Loading(),
		Modules: s.modulesHdl.Loading(),
		Logs:    s.loadingLogs,
		Status:  s.loadingStatus,
	}
}

func (s *Service) loadSystemColor(ctx context.Context) {
	color, err := s.themeHdl.SystemColor(ctx)
	if err != nil {
		logger.Debug("system color not available", slog_attr.ErrorKey, err)
		return
	}
	s.mu.Lock()
	s.systemColor = color
	s.mu.Unlock()
}
