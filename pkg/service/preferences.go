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

	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

// Preferences returns the stored preferences. The system colour replaces the
// seed when one was found.
func (s *Service) Preferences() models_preferences.Preferences {
	prefs := s.prefsHdl.Preferences()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.systemColor != "" {
		prefs.Seed = s.systemColor
	}
	return prefs
}

func (s *Service) SetPreferences(ctx context.Context, prefs models_preferences.Preferences) error {
	current := s.prefsHdl.Preferences()
	if err := s.prefsHdl.Save(ctx, prefs); err != nil {
		return err
	}
	if current.Lang != prefs.Lang {
		s.loadLocale(prefs.Lang)
	}
	return nil
}

func (s *Service) Locales() ([]models_preferences.Locale, error) {
	return s.localesHdl.List()
}

func (s *Service) Locale(code string) (map[string]any, error) {
	return s.localesHdl.Load(code)
}

func (s *Service) loadPreferences(ctx context.Context) models_preferences.Preferences {
	res := s.prefsHdl.Load(ctx)
	if res.Degraded() {
		logger.Warn("loading preferences failed, using defaults", slog_attr.ErrorKey, res.Diagnostic)
	}
	return res.Value
}

func (s *Service) loadLocale(code string) {
	catalog, err := s.localesHdl.Load(code)
	if err != nil {
		logger.Warn("loading locale failed", slog_attr.IDKey, code, slog_attr.ErrorKey, err)
		catalog = map[string]any{}
	}
	s.mu.Lock()
	s.locale = catalog
	s.mu.Unlock()
}

// text looks up section.key in the current locale.
func (s *Service) text(section, key, fallback string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.locale[section].(map[string]any); ok {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return fallback
}
