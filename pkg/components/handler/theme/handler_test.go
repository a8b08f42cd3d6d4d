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

package theme

import (
	"context"
	"errors"
	"testing"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

func TestParseColor(t *testing.T) {
	cases := map[string]string{
		`{"android.theme.customization.system_palette":"FF6750A4","android.theme.customization.theme_style":"TONAL_SPOT"}`: "#6750a4",
		`{"android.theme.customization.system_palette":"#1B6EF3"}`:                                                       "#1b6ef3",
		`{"source_color":"abcdef","other":"x"}`:                                                                          "#abcdef",
		`{"android.theme.customization.system_palette":"112233","source_color":"445566"}`:                                "#112233",
	}
	for setting, expected := range cases {
		color, err := ParseColor(setting)
		if err != nil {
			t.Errorf("%s: %s", setting, err)
			continue
		}
		if color != expected {
			t.Errorf("expected: %s, got: %s", expected, color)
		}
	}
	t.Run("not found", func(t *testing.T) {
		for _, setting := range []string{"null", "", `{"android.theme.customization.theme_style":"TONAL_SPOT"}`} {
			if _, err := ParseColor(setting); !errors.Is(err, models_error.NotFoundErr) {
				t.Errorf("expected: %v, got: %v", models_error.NotFoundErr, err)
			}
		}
	})
}

func TestHandler_SystemColor(t *testing.T) {
	runnerMock := &commandRunnerMock{Out: `{"android.theme.customization.system_palette":"FF6750A4"}`}
	h := New(runnerMock)
	color, err := h.SystemColor(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if color != "#6750a4" {
		t.Errorf("expected: %s, got: %s", "#6750a4", color)
	}
	if runnerMock.Cmd != "settings get secure theme_customization_overlay_packages" {
		t.Errorf("unexpected command: %s", runnerMock.Cmd)
	}
	t.Run("error", func(t *testing.T) {
		testErr := errors.New("test error")
		runnerMock.Err = testErr
		if _, err = h.SystemColor(context.Background()); !errors.Is(err, testErr) {
			t.Errorf("expected: %v, got: %v", testErr, err)
		}
	})
}

type commandRunnerMock struct {
	Out string
	Err error
	Cmd string
}

func (m *commandRunnerMock) Run(_ context.Context, name string, args ...string) (string, error) {
	m.Cmd = name
	for _, arg := range args {
		m.Cmd += " " + arg
	}
	return m.Out, m.Err
}
