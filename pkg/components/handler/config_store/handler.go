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

package config_store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/components/config_codec"
	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	models_result "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/result"
	"github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/slog_attr"
	"github.com/opencontainers/go-digest"
)

type State string

const (
	IdleState       State = "idle"
	LoadingState    State = "loading"
	LoadedState     State = "loaded"
	LoadFailedState State = "load_failed"
	SavingState     State = "saving"
	SaveFailedState State = "save_failed"
)

// Handler owns the working copy of the mount configuration. The loading and
// saving flags are advisory, concurrent Load or Save calls are not prevented.
type Handler struct {
	persistenceHdl  persistenceHandler
	path            string
	config          models_mount_config.WorkingConfig
	state           State
	loading         bool
	saving          bool
	persistedDigest digest.Digest
	mu              sync.RWMutex
}

func New(persistenceHdl persistenceHandler, path string) *Handler {
	return &Handler{
		persistenceHdl: persistenceHdl,
		path:           path,
		config:         Working(models_mount_config.Default()),
		state:          IdleState,
	}
}

// Working derives the form view of a persisted record. Session-only flags are false.
func Working(cfg models_mount_config.Config) models_mount_config.WorkingConfig {
	return models_mount_config.WorkingConfig{
		Config:        cfg,
		DisableUmount: !cfg.Umount,
	}
}

// Persisted folds DisableUmount back into Umount. This is the only place the
// polarity of the two fields is converted on the way to disk.
func Persisted(w models_mount_config.WorkingConfig) models_mount_config.Config {
	cfg := w.Config
	cfg.Umount = !w.DisableUmount
	return cfg
}

func Encode(w models_mount_config.WorkingConfig) string {
	return config_codec.Encode(Persisted(w))
}

func Validate(cfg models_mount_config.Config) error {
	if cfg.ModuleDir == "" {
		return errors.New("moduledir required")
	}
	if !filepath.IsAbs(cfg.ModuleDir) {
		return fmt.Errorf("moduledir '%s' is not an absolute path", cfg.ModuleDir)
	}
	if cfg.TempDir != "" && !filepath.IsAbs(cfg.TempDir) {
		return fmt.Errorf("tempdir '%s' is not an absolute path", cfg.TempDir)
	}
	return nil
}

// Load reads and decodes the configuration file. A missing file yields the
// defaults, any other failure yields the defaults together with a diagnostic.
func (h *Handler) Load(ctx context.Context) models_result.Result[models_mount_config.WorkingConfig] {
	h.mu.Lock()
	h.loading = true
	h.state = LoadingState
	h.mu.Unlock()
	text, err := h.persistenceHdl.ReadRaw(ctx, h.path)
	if err != nil {
		if !errors.Is(err, models_error.NotFoundErr) {
			logger.Warn("loading config failed", slog_attr.PathKey, h.path, slog_attr.ErrorKey, err)
			cfg := Working(models_mount_config.Default())
			h.finishLoad(LoadFailedState, cfg, "")
			return models_result.Degraded(cfg, err)
		}
		logger.Info("config not found, using defaults", slog_attr.PathKey, h.path)
	}
	pCfg, report := config_codec.Parse(text)
	if len(report.UnknownKeys) > 0 {
		logger.Warn("config contains unsupported keys, they will not be preserved", slog_attr.PathKey, h.path, slog_attr.KeysKey, report.UnknownKeys)
	}
	cfg := Working(pCfg)
	var dgst digest.Digest
	if err == nil {
		dgst = digest.FromString(config_codec.Encode(pCfg))
	}
	h.finishLoad(LoadedState, cfg, dgst)
	return models_result.Ok(cfg)
}

// Save persists cfg. Failures are returned as SaveErr carrying the diagnostic
// of the persistence layer.
func (h *Handler) Save(ctx context.Context, cfg models_mount_config.WorkingConfig) error {
	pCfg := Persisted(cfg)
	if err := Validate(pCfg); err != nil {
		return models_error.NewInvalidInputErr(err)
	}
	h.mu.Lock()
	h.saving = true
	h.state = SavingState
	h.mu.Unlock()
	text := config_codec.Encode(pCfg)
	if err := h.persistenceHdl.WriteRaw(ctx, h.path, text); err != nil {
		h.mu.Lock()
		h.saving = false
		h.state = SaveFailedState
		h.mu.Unlock()
		logger.Error("saving config failed", slog_attr.PathKey, h.path, slog_attr.ErrorKey, err)
		return models_error.NewSaveErr(err)
	}
	cfg.Umount = pCfg.Umount
	h.mu.Lock()
	h.config = copyConfig(cfg)
	h.persistedDigest = digest.FromString(text)
	h.saving = false
	h.state = LoadedState
	h.mu.Unlock()
	return nil
}

func (h *Handler) Config() models_mount_config.WorkingConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return copyConfig(h.config)
}

// SetConfig replaces the working copy without persisting it.
func (h *Handler) SetConfig(cfg models_mount_config.WorkingConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.config = copyConfig(cfg)
}

func (h *Handler) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

func (h *Handler) Loading() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.loading
}

func (h *Handler) Saving() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.saving
}

// Digest identifies the persisted form of the working copy.
func (h *Handler) Digest() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return digest.FromString(Encode(h.config)).String()
}

// Dirty reports whether the working copy differs from what was last read or
// written. Defaults that were never persisted count as dirty.
func (h *Handler) Dirty() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return digest.FromString(Encode(h.config)) != h.persistedDigest
}

func (h *Handler) finishLoad(state State, cfg models_mount_config.WorkingConfig, dgst digest.Digest) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.config = cfg
	h.persistedDigest = dgst
	h.loading = false
	h.state = state
}

func copyConfig(cfg models_mount_config.WorkingConfig) models_mount_config.WorkingConfig {
	if cfg.Partitions != nil {
		cfg.Partitions = append(make([]string, 0, len(cfg.Partitions)), cfg.Partitions...)
	}
	return cfg
}
