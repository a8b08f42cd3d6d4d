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

package config_codec

import (
	"strconv"
	"strings"

	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
)

const Header = "# Magic Mount Configuration File"

const (
	ModuleDirKey   = "moduledir"
	TempDirKey     = "tempdir"
	MountSourceKey = "mountsource"
	VerboseKey     = "verbose"
	UmountKey      = "umount"
	PartitionsKey  = "partitions"
)

var truthValues = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"on":   {},
}

// Report lists what a parse dropped. Unknown keys are not preserved on encode.
type Report struct {
	UnknownKeys []string
}

// Decode never fails. Fields absent from text keep their default values.
func Decode(text string) models_mount_config.Config {
	cfg, _ := Parse(text)
	return cfg
}

func Parse(text string) (cfg models_mount_config.Config, report Report) {
	defer func() {
		if r := recover(); r != nil {
			cfg = models_mount_config.Default()
			report = Report{}
		}
	}()
	cfg = models_mount_config.Default()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		if isList(value) {
			items := parseList(value)
			if key == PartitionsKey {
				cfg.Partitions = items
			} else {
				report.UnknownKeys = append(report.UnknownKeys, key)
			}
			continue
		}
		switch key {
		case ModuleDirKey:
			cfg.ModuleDir = stripQuotes(value)
		case TempDirKey:
			cfg.TempDir = stripQuotes(value)
		case MountSourceKey:
			cfg.MountSource = stripQuotes(value)
		case VerboseKey:
			cfg.Verbose = isTrue(value)
		case UmountKey:
			cfg.Umount = isTrue(value)
		default:
			report.UnknownKeys = append(report.UnknownKeys, key)
		}
	}
	return
}

// Encode writes fields in fixed order. An empty tempdir is omitted and booleans
// are always spelled true/false.
func Encode(cfg models_mount_config.Config) string {
	lines := []string{
		Header,
		"",
		ModuleDirKey + " = " + quote(cfg.ModuleDir),
	}
	if cfg.TempDir != "" {
		lines = append(lines, TempDirKey+" = "+quote(cfg.TempDir))
	}
	lines = append(lines,
		MountSourceKey+" = "+quote(cfg.MountSource),
		VerboseKey+" = "+strconv.FormatBool(cfg.Verbose),
		UmountKey+" = "+strconv.FormatBool(cfg.Umount),
	)
	parts := make([]string, len(cfg.Partitions))
	for i, p := range cfg.Partitions {
		parts[i] = quote(p)
	}
	lines = append(lines, PartitionsKey+" = ["+strings.Join(parts, ", ")+"]")
	return strings.Join(lines, "\n") + "\n"
}

func isList(v string) bool {
	return len(v) >= 2 && strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]")
}

func parseList(v string) []string {
	inner := v[1 : len(v)-1]
	if strings.TrimSpace(inner) == "" {
		return []string{}
	}
	items := strings.Split(inner, ",")
	for i, item := range items {
		items[i] = stripQuotes(strings.TrimSpace(item))
	}
	return items
}

func stripQuotes(v string) string {
	if v == `"` {
		return ""
	}
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}

// isTrue is applied to the raw value, quoted booleans are false.
func isTrue(v string) bool {
	_, ok := truthValues[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

func quote(s string) string {
	return `"` + s + `"`
}
