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

package module

type Mode string

const MagicMode Mode = "magic"

const UnknownAuthor = "Unknown"

type Rules struct {
	DefaultMode Mode            `json:"default_mode"`
	Paths       map[string]Mode `json:"paths"`
}

type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author"`
	Description string `json:"description"`
	IsMounted   bool   `json:"is_mounted"`
	Mode        Mode   `json:"mode"`
	Rules       Rules  `json:"rules"`
}

// RawModule is a record of the daemon's module listing.
type RawModule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Skip        bool   `json:"skip"`
}

type ModeStats map[Mode]int
