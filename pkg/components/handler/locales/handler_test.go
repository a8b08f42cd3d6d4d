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

package locales

import (
	"errors"
	"os"
	"path"
	"reflect"
	"testing"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
)

func newTestDir(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(path.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestHandler_List(t *testing.T) {
	dir := newTestDir(t, map[string]string{
		"zh.json":   `{"lang":{"display":"中文"}}`,
		"en.json":   `{"lang":{"display":"English"},"common":{"saveSuccess":"Saved"}}`,
		"de.json":   `{"lang":{"display":"Deutsch"}}`,
		"fr.json":   `{}`,
		"readme.md": "x",
	})
	h := New(dir)
	locales, err := h.List()
	if err != nil {
		t.Fatal(err)
	}
	a := []models_preferences.Locale{
		{Code: "en", Name: "English"},
		{Code: "de", Name: "Deutsch"},
		{Code: "fr", Name: "FR"},
		{Code: "zh", Name: "中文"},
	}
	if !reflect.DeepEqual(a, locales) {
		t.Errorf("expected: %v, got: %v", a, locales)
	}
	t.Run("error", func(t *testing.T) {
		_, err = New(newTestDir(t, map[string]string{"en.json": "{"})).List()
		var dErr *models_error.DecodeErr
		if !errors.As(err, &dErr) {
			t.Errorf("expected decode error, got: %v", err)
		}
	})
}

func TestHandler_Load(t *testing.T) {
	dir := newTestDir(t, map[string]string{
		"en.json": `{"lang":{"display":"English"}}`,
		"de.json": `{"lang":{"display":"Deutsch"}}`,
	})
	h := New(dir)
	catalog, err := h.Load("de")
	if err != nil {
		t.Fatal(err)
	}
	if displayName("de", catalog) != "Deutsch" {
		t.Errorf("unexpected catalog: %v", catalog)
	}
	t.Run("fallback", func(t *testing.T) {
		catalog, err = h.Load("xx")
		if err != nil {
			t.Fatal(err)
		}
		if displayName("xx", catalog) != "English" {
			t.Errorf("unexpected catalog: %v", catalog)
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err = h.Load("../en")
		var iErr *models_error.InvalidInputErr
		if !errors.As(err, &iErr) {
			t.Errorf("expected invalid input error, got: %v", err)
		}
		_, err = New(t.TempDir()).Load("de")
		if !errors.Is(err, models_error.NotFoundErr) {
			t.Errorf("expected: %v, got: %v", models_error.NotFoundErr, err)
		}
	})
}
