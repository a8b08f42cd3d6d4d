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

package daemon

import (
	"context"
	"encoding/json"
	"errors"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
	models_module "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/module"
)

const (
	scanCmd    = "scan"
	jsonFlag   = "--json"
	versionCmd = "version"
)

const defaultVersion = "0.0.0"

const source = "meta-mm"

type Client struct {
	runner  commandRunner
	binPath string
}

func New(runner commandRunner, config Config) *Client {
	return &Client{
		runner:  runner,
		binPath: config.BinPath,
	}
}

func (c *Client) ListModules(ctx context.Context) ([]models_module.RawModule, error) {
	out, err := c.runner.Run(ctx, c.binPath, scanCmd, jsonFlag)
	if err != nil {
		return nil, err
	}
	var mods []models_module.RawModule
	if err = json.Unmarshal([]byte(out), &mods); err != nil {
		return nil, models_error.NewDecodeErr(source, err)
	}
	return mods, nil
}

func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, c.binPath, versionCmd)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", models_error.NewDecodeErr(source, errors.New("empty version output"))
	}
	var res struct {
		Version string `json:"version"`
	}
	if err = json.Unmarshal([]byte(out), &res); err != nil {
		return "", models_error.NewDecodeErr(source, err)
	}
	if res.Version == "" {
		return defaultVersion, nil
	}
	return res.Version, nil
}
