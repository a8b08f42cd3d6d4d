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

package error

import (
	"errors"
	"strings"
)

var (
	NotFoundErr     = errors.New("not found")
	NotSupportedErr = errors.New("not supported")
)

type MultiError struct {
	errs []error
}

func NewMultiError(errs []error) *MultiError {
	return &MultiError{errs: errs}
}

func (e *MultiError) Error() string {
	var str string
	errsLen := len(e.errs)
	for i, err := range e.errs {
		str += err.Error()
		if i < errsLen-1 {
			str += "\n"
		}
	}
	return str
}

func (e *MultiError) Errors() []error {
	return e.errs
}

func (e *MultiError) Unwrap() []error {
	return e.errs
}

// TransportErr signals an unreachable collaborator or a non-zero failure signal.
type TransportErr struct {
	Source string
	Stderr string
	err    error
}

func NewTransportErr(source, stderr string, err error) *TransportErr {
	return &TransportErr{
		Source: source,
		Stderr: strings.TrimSpace(stderr),
		err:    err,
	}
}

func (e *TransportErr) Error() string {
	if e.Stderr != "" {
		return e.Source + ": " + e.err.Error() + ": " + e.Stderr
	}
	return e.Source + ": " + e.err.Error()
}

func (e *TransportErr) Unwrap() error {
	return e.err
}

// DecodeErr signals a payload that is present but not well-formed.
type DecodeErr struct {
	Source string
	err    error
}

func NewDecodeErr(source string, err error) *DecodeErr {
	return &DecodeErr{
		Source: source,
		err:    err,
	}
}

func (e *DecodeErr) Error() string {
	return e.Source + ": " + e.err.Error()
}

func (e *DecodeErr) Unwrap() error {
	return e.err
}

type SaveErr struct {
	err error
}

func NewSaveErr(err error) *SaveErr {
	return &SaveErr{err: err}
}

func (e *SaveErr) Error() string {
	return "saving config failed: " + e.err.Error()
}

func (e *SaveErr) Unwrap() error {
	return e.err
}

type InvalidInputErr struct {
	err error
}

func NewInvalidInputErr(err error) *InvalidInputErr {
	return &InvalidInputErr{err: err}
}

func (e *InvalidInputErr) Error() string {
	return e.err.Error()
}

func (e *InvalidInputErr) Unwrap() error {
	return e.err
}
