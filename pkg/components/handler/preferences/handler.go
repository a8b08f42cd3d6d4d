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

package preferences

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	"gopkg.in/yaml.v3"
)

var seedRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Handler struct {
	persistenceHdl persistenceHandler
	path           string
	prefs          models_preferences.Preferences
	mu             sync.RWMutex
}

func New(persistenceHdl persistenceHandler, path string) *Handler {
	return &Handler{
		persistenceHdl: persistenceHdl,
		path:           path,
		prefs:          models_preferences.Default(),
	}
}

// Load reads the preferences file. Fields missing from the file keep their
// defaults, an unreadable file yields the defaults and a diagnostic.
func (h *Handler) Load(ctx context.Context) models_result.Result[models_preferences.Preferences] {
	prefs := models_preferences.Default()
	text, err := h.persistenceHdl.ReadRaw(ctx, h.path)
	if err != nil {
		if !errors.Is(err, models_error.NotFoundErr) {
			h.set(prefs)
			return models_result.Degraded(prefs, err)
		}
	} else if err = yaml.NewDecoder(strings.NewReader(text)).Decode(&prefs); err != nil && !errors.Is(err, io.EOF) {
		prefs = models_preferences.Default()
		h.set(prefs)
		return models_result.Degraded(prefs, models_error.NewDecodeErr(h.path, err))
	}
	if err = Validate(prefs); err != nil {
		prefs = models_preferences.Default()
		h.set(prefs)
		return models_result.Degraded(prefs, models_error.NewDecodeErr(h.path, err))
	}
	h.set(prefs)
	return models_result.Ok(prefs)
}

func (h *Handler) Save(ctx context.Context, prefs models_preferences.Preferences) error {
	if err := Validate(prefs); err != nil {
		return models_error.NewInvalidInputErr(err)
	}
	b, err := yaml.Marshal(prefs)
	if err != nil {
		return err
	}
	if err = h.persistenceHdl.WriteRaw(ctx, h.path, string(b)); err != nil {
		return err
	}
	h.set(prefs)
	return nil
}

func (h *Handler) Preferences() models_preferences.Preferences {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.prefs
}

func Validate(prefs models_preferences.Preferences) error {
	if prefs.Lang == "" {
		return errors.New("lang required")
	}
	if !prefs.Theme.Valid() {
		return fmt.Errorf("invalid theme '%s'", prefs.Theme)
	}
	if !seedRegex.MatchString(prefs.Seed) {
		return fmt.Errorf("invalid seed '%s'", prefs.Seed)
	}
	return nil
}

func (h *Handler) set(prefs models_preferences.Preferences) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prefs = prefs
}
