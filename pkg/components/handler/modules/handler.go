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

package modules

import (
	"context"
	"errors"
	"fmt"
	"sync"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
)

// Handler maps the daemon's module listing to modules. It holds the last
// listing it produced and replaces it as a whole on every Load.
type Handler struct {
	daemonClt daemonClient
	modules   []models_module.Module
	loaded    bool
	loading   bool
	mu        sync.RWMutex
}

func New(daemonClt daemonClient) *Handler {
	return &Handler{
		daemonClt: daemonClt,
		modules:   []models_module.Module{},
	}
}

// Scan queries the daemon once. Failures yield an empty listing and a diagnostic,
// partial listings are never returned.
func (h *Handler) Scan(ctx context.Context) models_result.Result[[]models_module.Module] {
	rawMods, err := h.daemonClt.ListModules(ctx)
	if err != nil {
		logger.Error("scanning modules failed", slog_attr.ErrorKey, err)
		return models_result.Degraded([]models_module.Module{}, err)
	}
	modules := make([]models_module.Module, 0, len(rawMods))
	for i, rawMod := range rawMods {
		if rawMod.ID == "" {
			err = models_error.NewDecodeErr("module listing", fmt.Errorf("record %d: %w", i, errors.New("missing id")))
			logger.Error("scanning modules failed", slog_attr.ErrorKey, err)
			return models_result.Degraded([]models_module.Module{}, err)
		}
		modules = append(modules, newModule(rawMod))
	}
	return models_result.Ok(modules)
}

// Load scans and stores the result. The listing counts as loaded after the first
// scan without diagnostic.
func (h *Handler) Load(ctx context.Context) models_result.Result[[]models_module.Module] {
	h.mu.Lock()
	h.loading = true
	h.mu.Unlock()
	res := h.Scan(ctx)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.modules = res.Value
	if !res.Degraded() {
		h.loaded = true
	}
	h.loading = false
	logger.Debug("modules loaded", slog_attr.CountKey, len(res.Value))
	return models_result.Result[[]models_module.Module]{
		Value:      copyModules(res.Value),
		Diagnostic: res.Diagnostic,
	}
}

func (h *Handler) Modules() []models_module.Module {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return copyModules(h.modules)
}

func (h *Handler) Loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loaded
}

func (h *Handler) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

// Stats counts mounted modules per mode.
func (h *Handler) Stats() models_module.ModeStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	stats := make(models_module.ModeStats)
	for _, mod := range h.modules {
		if mod.IsMounted {
			stats[mod.Mode]++
		}
	}
	return stats
}

func newModule(rawMod models_module.RawModule) models_module.Module {
	author := rawMod.Author
	if author == "" {
		author = models_module.UnknownAuthor
	}
	return models_module.Module{
		ID:          rawMod.ID,
		Name:        rawMod.Name,
		Version:     rawMod.Version,
		Author:      author,
		Description: rawMod.Description,
		IsMounted:   !rawMod.Skip,
		Mode:        models_module.MagicMode,
		Rules: models_module.Rules{
			DefaultMode: models_module.MagicMode,
			Paths:       make(map[string]models_module.Mode),
		},
	}
}

func copyModules(mods []models_module.Module) []models_module.Module {
	cp := make([]models_module.Module, len(mods))
	copy(cp, mods)
	return cp
}
