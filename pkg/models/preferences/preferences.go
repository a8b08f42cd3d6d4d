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

package preferences

type Theme string

const (
	AutoTheme  Theme = "auto"
	LightTheme Theme = "light"
	DarkTheme  Theme = "dark"
)

const (
	DefaultLang = "en"
	DefaultSeed = "#6750a4"
)

type Preferences struct {
	Lang  string `json:"lang" yaml:"lang"`
	Theme Theme  `json:"theme" yaml:"theme"`
	Seed  string `json:"seed" yaml:"seed"`
}

type Locale struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func Default() Preferences {
	return Preferences{
		Lang:  DefaultLang,
		Theme: AutoTheme,
		Seed:  DefaultSeed,
	}
}

func (t Theme) Valid() bool {
	switch t {
	case AutoTheme, LightTheme, DarkTheme:
		return true
	}
	return false
}
