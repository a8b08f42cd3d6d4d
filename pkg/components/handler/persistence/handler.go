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

package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	models_error "github.com/SENERGY-Platform/mgw-mount-manager/pkg/models/error"
)

const source = "persistence"

type Handler struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

func New(dirPerm, filePerm fs.FileMode) *Handler {
	return &Handler{
		dirPerm:  dirPerm,
		filePerm: filePerm,
	}
}

func (h *Handler) ReadRaw(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", path, models_error.NotFoundErr)
		}
		return "", models_error.NewTransportErr(source, "", err)
	}
	return string(b), nil
}

// WriteRaw creates missing parent directories, replaces the file via rename and
// leaves it with the configured mode so other processes can read it.
func (h *Handler) WriteRaw(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), h.dirPerm); err != nil {
		return models_error.NewTransportErr(source, "", err)
	}
	if err := writeFileAtomic(path, []byte(text), h.filePerm); err != nil {
		return models_error.NewTransportErr(source, "", err)
	}
	return nil
}

func writeFileAtomic(filePath string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, filePath); err != nil {
		return err
	}
	dfd, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer dfd.Close()
	return dfd.Sync()
}
