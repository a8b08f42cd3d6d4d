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

package cmd_exec

import (
	"context"
	"errors"
	"testing"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

func TestRunner_Run(t *testing.T) {
	r := New(nil)
	out, err := r.Run(context.Background(), "sh", "-c", "echo test")
	if err != nil {
		t.Fatal(err)
	}
	if out != "test\n" {
		t.Errorf("expected: %q, got: %q", "test\n", out)
	}
	t.Run("env", func(t *testing.T) {
		r = New([]string{"MM_TEST=value"})
		out, err = r.Run(context.Background(), "sh", "-c", "echo $MM_TEST")
		if err != nil {
			t.Fatal(err)
		}
		if out != "value\n" {
			t.Errorf("expected: %q, got: %q", "value\n", out)
		}
	})
	t.Run("error", func(t *testing.T) {
		t.Run("exit code", func(t *testing.T) {
			_, err = r.Run(context.Background(), "sh", "-c", "echo failed >&2; exit 3")
			var tErr *models_error.TransportErr
			if !errors.As(err, &tErr) {
				t.Fatalf("expected transport error, got: %v", err)
			}
			if tErr.Stderr != "failed" {
				t.Errorf("expected: %q, got: %q", "failed", tErr.Stderr)
			}
		})
		t.Run("does not exist", func(t *testing.T) {
			_, err = r.Run(context.Background(), "/does/not/exist")
			var tErr *models_error.TransportErr
			if !errors.As(err, &tErr) {
				t.Errorf("expected transport error, got: %v", err)
			}
		})
		t.Run("canceled", func(t *testing.T) {
			ctx, cf := context.WithCancel(context.Background())
			cf()
			_, err = r.Run(ctx, "sh", "-c", "sleep 5")
			if err == nil {
				t.Error("expected error")
			}
		})
	})
}
