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
	"fmt"
	"regexp"
	"strings"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

const overlayPackagesSetting = "theme_customization_overlay_packages"

var colorRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)["']?android\.theme\.customization\.system_palette["']?\s*:\s*["']?#?([0-9a-f]{6,8})["']?`),
	regexp.MustCompile(`(?i)["']?source_color["']?\s*:\s*["']?#?([0-9a-f]{6,8})["']?`),
}

type Handler struct {
	runner commandRunner
}

func New(runner commandRunner) *Handler {
	return &Handler{runner: runner}
}

// SystemColor returns the system accent colour as #rrggbb.
func (h *Handler) SystemColor(ctx context.Context) (string, error) {
	out, err := h.runner.Run(ctx, "settings", "get", "secure", overlayPackagesSetting)
	if err != nil {
		return "", err
	}
	return ParseColor(out)
}

// ParseColor extracts the palette colour from the overlay packages setting. The
// alpha byte of 8-digit values is dropped.
func ParseColor(setting string) (string, error) {
	for _, re := range colorRegexes {
		m := re.FindStringSubmatch(setting)
		if m == nil {
			continue
		}
		hex := m[1]
		if len(hex) == 8 {
			hex = hex[2:]
		}
		return "#" + strings.ToLower(hex), nil
	}
	return "", fmt.Errorf("system color: %w", models_error.NotFoundErr)
}
