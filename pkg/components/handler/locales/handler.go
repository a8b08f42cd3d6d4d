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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strings"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_preferences "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/preferences"
)

const fileExt = ".json"

var codeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Handler serves locale catalogs stored as <code>.json files of a directory.
type Handler struct {
	dirFS fs.FS
}

func New(dirPath string) *Handler {
	return &Handler{dirFS: os.DirFS(dirPath)}
}

// List returns the available locales, en first and the rest ordered by name.
func (h *Handler) List() ([]models_preferences.Locale, error) {
	names, err := fs.Glob(h.dirFS, "*"+fileExt)
	if err != nil {
		return nil, err
	}
	locales := make([]models_preferences.Locale, 0, len(names))
	for _, name := range names {
		code := strings.TrimSuffix(name, fileExt)
		catalog, err := h.read(name)
		if err != nil {
			return nil, err
		}
		locales = append(locales, models_preferences.Locale{
			Code: code,
			Name: displayName(code, catalog),
		})
	}
	slices.SortFunc(locales, func(a, b models_preferences.Locale) int {
		if a.Code == models_preferences.DefaultLang {
			return -1
		}
		if b.Code == models_preferences.DefaultLang {
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return locales, nil
}

// Load returns the catalog for code, falling back to en when code has none.
func (h *Handler) Load(code string) (map[string]any, error) {
	if !codeRegex.MatchString(code) {
		return nil, models_error.NewInvalidInputErr(fmt.Errorf("invalid locale code '%s'", code))
	}
	catalog, err := h.read(code + fileExt)
	if err == nil {
		return catalog, nil
	}
	if !errors.Is(err, models_error.NotFoundErr) || code == models_preferences.DefaultLang {
		return nil, err
	}
	return h.read(models_preferences.DefaultLang + fileExt)
}

func (h *Handler) read(name string) (map[string]any, error) {
	b, err := fs.ReadFile(h.dirFS, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("locale %s: %w", name, models_error.NotFoundErr)
		}
		return nil, err
	}
	var catalog map[string]any
	if err = json.Unmarshal(b, &catalog); err != nil {
		return nil, models_error.NewDecodeErr(name, err)
	}
	return catalog, nil
}

func displayName(code string, catalog map[string]any) string {
	if lang, ok := catalog["lang"].(map[string]any); ok {
		if name, ok := lang["display"].(string); ok && name != "" {
			return name
		}
	}
	return strings.ToUpper(code)
}
