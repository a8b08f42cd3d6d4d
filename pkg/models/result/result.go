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

package result

// Result carries the value of a load-path operation. A non-nil Diagnostic marks
// the value as a substitute (default or empty) for what could not be loaded.
type Result[T any] struct {
	Value      T
	Diagnostic error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Degraded[T any](v T, diagnostic error) Result[T] {
	return Result[T]{Value: v, Diagnostic: diagnostic}
}

func (r Result[T]) Degraded() bool {
	return r.Diagnostic != nil
}
