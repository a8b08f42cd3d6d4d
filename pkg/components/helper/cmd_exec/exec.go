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
	"bytes"
	"context"
	"os/exec"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

// Runner executes programs on behalf of the service. Cancellation is left to the
// caller's context.
type Runner struct {
	env []string
}

func New(env []string) *Runner {
	return &Runner{env: env}
}

// Run returns stdout. A failed start or a non-zero exit yields a TransportErr
// carrying stderr.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.String(), models_error.NewTransportErr(name, stderr.String(), err)
	}
	return stdout.String(), nil
}
