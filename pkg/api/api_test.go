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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
	models_service "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/service"
	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

func newTestApi(t *testing.T) (*Api, *serviceMock) {
	srvMock := &serviceMock{
		Cfg:   models_mount_config.WorkingConfig{Config: models_mount_config.Default(), DisableUmount: true},
		Prefs: models_preferences.Default(),
	}
	a, err := New(srvMock, &infoHandlerMock{}, slog.Default(), false)
	if err != nil {
		t.Fatal(err)
	}
	return a, srvMock
}

func doRequest(a *Api, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func TestApi_Config(t *testing.T) {
	a, srvMock := newTestApi(t)
	t.Run("get", func(t *testing.T) {
		rec := doRequest(a, http.MethodGet, "/config", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected: %d, got: %d", http.StatusOK, rec.Code)
		}
		var cfg models_mount_config.WorkingConfig
		if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(srvMock.Cfg, cfg) {
			t.Errorf("expected: %v, got: %v", srvMock.Cfg, cfg)
		}
		etag := rec.Header().Get("ETag")
		if etag != `"sha256:test"` {
			t.Errorf("unexpected etag: %s", etag)
		}
		rec = doRequest(a, http.MethodGet, "/config", "", map[string]string{"If-None-Match": etag})
		if rec.Code != http.StatusNotModified {
			t.Errorf("expected: %d, got: %d", http.StatusNotModified, rec.Code)
		}
	})
	t.Run("put", func(t *testing.T) {
		rec := doRequest(a, http.MethodPut, "/config", `{"moduledir":"/m","mountsource":"KSU","verbose":true,"disable_umount":false,"partitions":["system_ext"]}`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected: %d, got: %d", http.StatusOK, rec.Code)
		}
		b := models_mount_config.WorkingConfig{
			Config: models_mount_config.Config{
				ModuleDir:   "/m",
				MountSource: "KSU",
				Verbose:     true,
				Partitions:  []string{"system_ext"},
			},
		}
		if !reflect.DeepEqual(b, srvMock.Saved) {
			t.Errorf("expected: %v, got: %v", b, srvMock.Saved)
		}
	})
	t.Run("patch", func(t *testing.T) {
		rec := doRequest(a, http.MethodPatch, "/config", `{"dry_run":true}`, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected: %d, got: %d", http.StatusOK, rec.Code)
		}
		if !srvMock.Cfg.DryRun || srvMock.Cfg.ModuleDir != "/m" {
			t.Errorf("unexpected config: %v", srvMock.Cfg)
		}
	})
	t.Run("reload", func(t *testing.T) {
		rec := doRequest(a, http.MethodPost, "/config/reload", "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
		}
		if srvMock.LoadConfigCalls != 1 {
			t.Errorf("expected 1 call, got: %d", srvMock.LoadConfigCalls)
		}
	})
	t.Run("state", func(t *testing.T) {
		rec := doRequest(a, http.MethodGet, "/config/state", "", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
		}
	})
	t.Run("error", func(t *testing.T) {
		t.Run("bad body", func(t *testing.T) {
			rec := doRequest(a, http.MethodPut, "/config", `{"moduledir":`, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected: %d, got: %d", http.StatusBadRequest, rec.Code)
			}
		})
		t.Run("save failed", func(t *testing.T) {
			srvMock.SaveErr = models_error.NewSaveErr(models_error.NewTransportErr("persistence", "read-only file system", errors.New("exit status 1")))
			rec := doRequest(a, http.MethodPut, "/config", `{"moduledir":"/m"}`, nil)
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("expected: %d, got: %d", http.StatusInternalServerError, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "read-only file system") {
				t.Errorf("expected diagnostic in %q", rec.Body.String())
			}
			srvMock.SaveErr = nil
		})
		t.Run("invalid", func(t *testing.T) {
			srvMock.SaveErr = models_error.NewInvalidInputErr(errors.New("moduledir required"))
			rec := doRequest(a, http.MethodPut, "/config", `{"moduledir":""}`, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected: %d, got: %d", http.StatusBadRequest, rec.Code)
			}
			srvMock.SaveErr = nil
		})
	})
}

func TestApi_Modules(t *testing.T) {
	a, srvMock := newTestApi(t)
	srvMock.Mods = []models_module.Module{{ID: "a", Author: "Unknown", IsMounted: true, Mode: models_module.MagicMode}}
	for _, target := range []string{"/modules", "/modules/stats"} {
		if rec := doRequest(a, http.MethodGet, target, "", nil); rec.Code != http.StatusOK {
			t.Errorf("%s: expected: %d, got: %d", target, http.StatusOK, rec.Code)
		}
	}
	rec := doRequest(a, http.MethodPost, "/modules/scan", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	var mods []models_module.Module
	if err := json.Unmarshal(rec.Body.Bytes(), &mods); err != nil {
		t.Fatal(err)
	}
	if len(mods) != 1 || mods[0].ID != "a" {
		t.Errorf("unexpected modules: %v", mods)
	}
	rec = doRequest(a, http.MethodPut, "/modules", "", nil)
	if rec.Code != http.StatusNotImplemented {
		t.Errorf("expected: %d, got: %d", http.StatusNotImplemented, rec.Code)
	}
}

func TestApi_Status(t *testing.T) {
	a, _ := newTestApi(t)
	for _, req := range [][2]string{
		{http.MethodGet, "/status"},
		{http.MethodPost, "/status/refresh"},
		{http.MethodGet, "/status/loading"},
		{http.MethodGet, "/notifications"},
		{http.MethodGet, "/info"},
	} {
		if rec := doRequest(a, req[0], req[1], "", nil); rec.Code != http.StatusOK {
			t.Errorf("%s %s: expected: %d, got: %d", req[0], req[1], http.StatusOK, rec.Code)
		}
	}
}

func TestApi_Logs(t *testing.T) {
	a, srvMock := newTestApi(t)
	rec := doRequest(a, http.MethodGet, "/logs?lines=50", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	if srvMock.LogsN != 50 {
		t.Errorf("expected: %d, got: %d", 50, srvMock.LogsN)
	}
	for _, target := range []string{"/logs?lines=x", "/logs?lines=-1", "/logs?lines=10001", "/logs?lines=1000000000"} {
		if rec = doRequest(a, http.MethodGet, target, "", nil); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected: %d, got: %d", target, http.StatusBadRequest, rec.Code)
		}
	}
	srvMock.LogsN = 0
	if rec = doRequest(a, http.MethodGet, "/logs?lines=10000", "", nil); rec.Code != http.StatusOK {
		t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	if srvMock.LogsN != models_logs.MaxLines {
		t.Errorf("expected: %d, got: %d", models_logs.MaxLines, srvMock.LogsN)
	}
}

func TestApi_Preferences(t *testing.T) {
	a, srvMock := newTestApi(t)
	rec := doRequest(a, http.MethodPut, "/preferences", `{"lang":"de","theme":"dark","seed":"#000000"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	b := models_preferences.Preferences{Lang: "de", Theme: models_preferences.DarkTheme, Seed: "#000000"}
	if !reflect.DeepEqual(b, srvMock.Prefs) {
		t.Errorf("expected: %v, got: %v", b, srvMock.Prefs)
	}
	if rec = doRequest(a, http.MethodGet, "/locales", "", nil); rec.Code != http.StatusOK {
		t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	if rec = doRequest(a, http.MethodGet, "/locales/en", "", nil); rec.Code != http.StatusOK {
		t.Errorf("expected: %d, got: %d", http.StatusOK, rec.Code)
	}
	if rec = doRequest(a, http.MethodGet, "/locales/xx", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("expected: %d, got: %d", http.StatusNotFound, rec.Code)
	}
}

func TestApi_Reboot(t *testing.T) {
	a, srvMock := newTestApi(t)
	if rec := doRequest(a, http.MethodPost, "/device/reboot", "", nil); rec.Code != http.StatusAccepted {
		t.Errorf("expected: %d, got: %d", http.StatusAccepted, rec.Code)
	}
	srvMock.RebootErr = models_error.NewTransportErr("reboot", "", errors.New("exit status 1"))
	if rec := doRequest(a, http.MethodPost, "/device/reboot", "", nil); rec.Code != http.StatusBadGateway {
		t.Errorf("expected: %d, got: %d", http.StatusBadGateway, rec.Code)
	}
}

type serviceMock struct {
	Cfg             models_mount_config.WorkingConfig
	Saved           models_mount_config.WorkingConfig
	SaveErr         error
	LoadConfigCalls int
	Mods            []models_module.Module
	Prefs           models_preferences.Preferences
	LogsN           int
	RebootErr       error
}

func (m *serviceMock) LoadConfig(_ context.Context) models_mount_config.WorkingConfig {
	m.LoadConfigCalls++
	return m.Cfg
}

func (m *serviceMock) SaveConfig(_ context.Context, cfg models_mount_config.WorkingConfig) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = cfg
	m.Cfg = cfg
	return nil
}

func (m *serviceMock) SetConfig(cfg models_mount_config.WorkingConfig) {
	m.Cfg = cfg
}

func (m *serviceMock) Config() models_mount_config.WorkingConfig {
	return m.Cfg
}

func (m *serviceMock) ConfigState() models_service.ConfigState {
	return models_service.ConfigState{State: "loaded", Digest: "sha256:test"}
}

func (m *serviceMock) LoadModules(_ context.Context) []models_module.Module {
	return m.Mods
}

func (m *serviceMock) Modules() []models_module.Module {
	return m.Mods
}

func (m *serviceMock) ModeStats() models_module.ModeStats {
	return models_module.ModeStats{models_module.MagicMode: len(m.Mods)}
}

func (m *serviceMock) SaveModules(_ context.Context) error {
	return models_error.NotSupportedErr
}

func (m *serviceMock) LoadStatus(_ context.Context) models_status.Snapshot {
	return models_status.Initial()
}

func (m *serviceMock) Status() models_status.Snapshot {
	return models_status.Initial()
}

func (m *serviceMock) Loading() models_service.Loading {
	return models_service.Loading{}
}

func (m *serviceMock) LoadLogs(_ context.Context, n int) []models_logs.Line {
	m.LogsN = n
	return []models_logs.Line{}
}

func (m *serviceMock) Preferences() models_preferences.Preferences {
	return m.Prefs
}

func (m *serviceMock) SetPreferences(_ context.Context, prefs models_preferences.Preferences) error {
	m.Prefs = prefs
	return nil
}

func (m *serviceMock) Locales() ([]models_preferences.Locale, error) {
	return []models_preferences.Locale{{Code: "en", Name: "English"}}, nil
}

func (m *serviceMock) Locale(code string) (map[string]any, error) {
	if code != "en" {
		return nil, models_error.NotFoundErr
	}
	return map[string]any{}, nil
}

func (m *serviceMock) Notifications() []models_service.Notification {
	return []models_service.Notification{}
}

func (m *serviceMock) Reboot(_ context.Context) error {
	return m.RebootErr
}

type infoHandlerMock struct{}

func (m *infoHandlerMock) ServiceInfo() srv_info_hdl.ServiceInfo {
	return srv_info_hdl.ServiceInfo{}
}

func (m *infoHandlerMock) Version() string {
	return "test"
}

func (m *infoHandlerMock) Name() string {
	return "mount-manager"
}
