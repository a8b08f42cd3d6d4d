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

package os_signal

import (
	"context"
	"log/slog"
	"syscall"
	"testing"
	"time"
)

func TestWait(t *testing.T) {
	t.Run("signal", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			Wait(context.Background(), slog.Default(), syscall.SIGUSR1)
			close(done)
		}()
		time.Sleep(50 * time.Millisecond)
		if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
			t.Fatal(err)
		}
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Error("wait did not return")
		}
	})
	t.Run("context", func(t *testing.T) {
		ctx, cf := context.WithCancel(context.Background())
		cf()
		Wait(ctx, slog.Default(), syscall.SIGUSR2)
	})
}
