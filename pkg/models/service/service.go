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

package service

import "time"

type NotificationType string

const (
	InfoNotification    NotificationType = "info"
	SuccessNotification NotificationType = "success"
	ErrorNotification   NotificationType = "error"
)

type Notification struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Type    NotificationType `json:"type"`
	Created time.Time        `json:"created"`
}

type ConfigState struct {
	State   string `json:"state"`
	Loading bool   `json:"loading"`
	Saving  bool   `json:"saving"`
	Dirty   bool   `json:"dirty"`
	Digest  string `json:"digest"`
}

type Loading struct {
	Config  bool `json:"config"`
	Modules bool `json:"modules"`
	Logs    bool `json:"logs"`
	Status  bool `json:"status"`
}
