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

package device

import (
	"context"
	"strings"

	models_status "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/status"
)

const (
	getpropCmd  = "getprop"
	modelProp   = "ro.product.model"
	androidProp = "ro.build.version.release"
	rebootCmd   = "reboot"
)

type Handler struct {
	runner commandRunner
	config Config
}

func New(runner commandRunner, config Config) *Handler {
	return &Handler{
		runner: runner,
		config: config,
	}
}

func (h *Handler) DeviceIdentity(ctx context.Context) (models_status.DeviceIdentity, error) {
	model, err := h.getProp(ctx, modelProp)
	if err != nil {
		return models_status.DeviceIdentity{}, err
	}
	android, err := h.getProp(ctx, androidProp)
	if err != nil {
		return models_status.DeviceIdentity{}, err
	}
	return models_status.DeviceIdentity{
		Model:   model,
		Android: android,
	}, nil
}

func (h *Handler) Reboot(ctx context.Context) error {
	_, err := h.runner.Run(ctx, rebootCmd)
	return err
}

func (h *Handler) getProp(ctx context.Context, name string) (string, error) {
	out, err := h.runner.Run(ctx, getpropCmd, name)
	if err != nil {
		return "", err
	}
	if v := strings.TrimSpace(out); v != "" {
		return v, nil
	}
	return models_status.UnknownValue, nil
}
