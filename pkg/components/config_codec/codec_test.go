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
	"reflect"
	"strings"
	"testing"

	models_mount_config "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/mount_config"
)

func TestDecode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		a := models_mount_config.Default()
		b := Decode("")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	})
	t.Run("comments and blank lines", func(t *testing.T) {
		a := models_mount_config.Default()
		b := Decode("# comment\n\n   # indented comment\n\t\n")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	})
	t.Run("scenario", func(t *testing.T) {
		a := models_mount_config.Config{
			ModuleDir:   "/data/adb/modules",
			MountSource: models_mount_config.DefaultMountSource,
			Umount:      true,
			Partitions:  []string{"vendor", "product"},
		}
		b := Decode("moduledir = \"/data/adb/modules\"\numount = true\npartitions = [\"vendor\", \"product\"]\n")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	})
	t.Run("empty list", func(t *testing.T) {
		b := Decode("partitions = [\"system\"]\npartitions = []\n")
		if b.Partitions == nil || len(b.Partitions) != 0 {
			t.Errorf("expected empty partitions, got: %v", b.Partitions)
		}
		b = Decode("partitions = [   ]\n")
		if b.Partitions == nil || len(b.Partitions) != 0 {
			t.Errorf("expected empty partitions, got: %v", b.Partitions)
		}
	})
	t.Run("list", func(t *testing.T) {
		a := []string{"a", "b"}
		b := Decode("partitions = [\"a\", \"b\"]\n")
		if !reflect.DeepEqual(a, b.Partitions) {
			t.Errorf("expected: %v, got: %v", a, b.Partitions)
		}
		b = Decode("partitions = [a,b]\n")
		if !reflect.DeepEqual(a, b.Partitions) {
			t.Errorf("expected: %v, got: %v", a, b.Partitions)
		}
	})
	t.Run("booleans", func(t *testing.T) {
		cases := map[string]bool{
			"verbose = YES\n":    true,
			"verbose = On\n":     true,
			"verbose = 1\n":      true,
			"verbose = TRUE\n":   true,
			"verbose = nope\n":   false,
			"verbose = 0\n":      false,
			"verbose = \"true\"": false,
		}
		for text, expected := range cases {
			if b := Decode(text); b.Verbose != expected {
				t.Errorf("%q: expected: %v, got: %v", text, expected, b.Verbose)
			}
		}
	})
	t.Run("umount false", func(t *testing.T) {
		b := Decode("umount = true\numount = 0\n")
		if b.Umount {
			t.Error("expected umount to be false")
		}
	})
	t.Run("line without equals", func(t *testing.T) {
		a := Decode("moduledir = \"/m\"\nmountsource = \"APatch\"\n")
		b := Decode("moduledir = \"/m\"\ngarbage-no-equals\nmountsource = \"APatch\"\n")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	})
	t.Run("missing key or value", func(t *testing.T) {
		a := models_mount_config.Default()
		b := Decode(" = \"/m\"\nmoduledir =\ntempdir=  \n")
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	})
	t.Run("value containing equals", func(t *testing.T) {
		b := Decode("mountsource = \"a=b\"\n")
		if b.MountSource != "a=b" {
			t.Errorf("expected: %s, got: %s", "a=b", b.MountSource)
		}
	})
	t.Run("crlf", func(t *testing.T) {
		b := Decode("moduledir = \"/m\"\r\nverbose = true\r\n")
		if b.ModuleDir != "/m" || !b.Verbose {
			t.Errorf("unexpected result: %v", b)
		}
	})
	t.Run("one layer of quotes", func(t *testing.T) {
		b := Decode("tempdir = \"\"/tmp\"\"\n")
		if b.TempDir != "\"/tmp\"" {
			t.Errorf("expected: %s, got: %s", "\"/tmp\"", b.TempDir)
		}
	})
}

func TestParse(t *testing.T) {
	_, report := Parse("logfile = \"/x\"\nextra = [\"a\"]\nverbose = true\n")
	a := []string{"logfile", "extra"}
	if !reflect.DeepEqual(a, report.UnknownKeys) {
		t.Errorf("expected: %v, got: %v", a, report.UnknownKeys)
	}
}

func TestEncode(t *testing.T) {
	cfg := models_mount_config.Config{
		ModuleDir:   "/m",
		MountSource: "KSU",
		Verbose:     true,
		Umount:      true,
		Partitions:  []string{"system_ext"},
	}
	a := Header + "\n\nmoduledir = \"/m\"\nmountsource = \"KSU\"\nverbose = true\numount = true\npartitions = [\"system_ext\"]\n"
	b := Encode(cfg)
	if a != b {
		t.Errorf("expected: %q, got: %q", a, b)
	}
	if strings.Contains(b, TempDirKey) {
		t.Error("expected no tempdir line")
	}
	t.Run("tempdir and empty partitions", func(t *testing.T) {
		cfg.TempDir = "/debug_ramdisk"
		cfg.Partitions = nil
		b = Encode(cfg)
		if !strings.Contains(b, "\ntempdir = \"/debug_ramdisk\"\n") {
			t.Errorf("expected tempdir line in %q", b)
		}
		if !strings.HasSuffix(b, "\npartitions = []\n") {
			t.Errorf("expected empty partitions in %q", b)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	configs := []models_mount_config.Config{
		{
			ModuleDir:   "/data/adb/modules",
			TempDir:     "/mnt/vendor",
			MountSource: "KSU",
			Verbose:     true,
			Umount:      false,
			Partitions:  []string{"vendor", "product", "vendor"},
		},
		{
			ModuleDir:   "/m",
			TempDir:     "/t",
			MountSource: "MaGIcMounT",
			Umount:      true,
			Partitions:  []string{},
		},
	}
	for _, a := range configs {
		b := Decode(Encode(a))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("expected: %v, got: %v", a, b)
		}
	}
	t.Run("empty tempdir", func(t *testing.T) {
		a := configs[0]
		a.TempDir = ""
		b := Decode(Encode(a))
		if b.TempDir != "" {
			t.Errorf("expected empty tempdir, got: %s", b.TempDir)
		}
	})
}
