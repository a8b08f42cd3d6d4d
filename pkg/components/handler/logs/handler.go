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

package logs

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_logs "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/logs"
)

const DefaultLines = 1000

const maxLineSize = 1024 * 1024

type Handler struct {
	path string
}

func New(path string) *Handler {
	return &Handler{path: path}
}

// Read returns the last n lines of the daemon log, n < 1 selects DefaultLines and
// n is capped at models_logs.MaxLines. A missing log file yields no lines.
func (h *Handler) Read(ctx context.Context, n int) ([]models_logs.Line, error) {
	if n < 1 {
		n = DefaultLines
	}
	n = min(n, models_logs.MaxLines)
	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models_logs.Line{}, nil
		}
		return nil, models_error.NewTransportErr("logs", "", err)
	}
	defer file.Close()
	ring := make([]string, 0, min(n, DefaultLines))
	var count int
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		if count%DefaultLines == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if len(ring) < n {
			ring = append(ring, scanner.Text())
		} else {
			ring[count%n] = scanner.Text()
		}
		count++
	}
	if err = scanner.Err(); err != nil {
		return nil, models_error.NewTransportErr("logs", "", err)
	}
	size := min(count, n)
	lines := make([]models_logs.Line, 0, size)
	for i := count - size; i < count; i++ {
		text := ring[i%n]
		lines = append(lines, models_logs.Line{
			Text: text,
			Type: Classify(text),
		})
	}
	return lines, nil
}

func Classify(line string) models_logs.LineType {
	switch {
	case strings.Contains(line, "[E]") || strings.Contains(line, "ERROR"):
		return models_logs.ErrorLine
	case strings.Contains(line, "[W]") || strings.Contains(line, "WARN"):
		return models_logs.WarnLine
	case strings.Contains(line, "[D]") || strings.Contains(line, "DEBUG"):
		return models_logs.DebugLine
	default:
		return models_logs.InfoLine
	}
}
