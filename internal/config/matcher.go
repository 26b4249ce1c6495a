// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/dadrus/pathrouter/internal/validation"
)

type MatcherConfig struct {
	WildcardOpen      string `koanf:"wildcard_open"      validate:"delimiter"`
	WildcardClose     string `koanf:"wildcard_close"     validate:"delimiter,nefield=WildcardOpen"`
	TrailingDelimiter string `koanf:"trailing_delimiter" validate:"delimiter,nefield=WildcardOpen,nefield=WildcardClose"` //nolint:lll
	Default           string `koanf:"default"`
}

// Delimiters returns the configured wildcard and trailing delimiters. It expects a
// validated configuration.
func (c MatcherConfig) Delimiters() (byte, byte, byte) {
	return c.WildcardOpen[0], c.WildcardClose[0], c.TrailingDelimiter[0]
}

type RouteConfig struct {
	ID      string `koanf:"id"      validate:"required"`
	Pattern string `koanf:"pattern" validate:"required,min=2"`
	Value   string `koanf:"value"`
}

// DelimiterValidator implements the "delimiter" tag, which accepts exactly one ASCII
// character. It must be registered with the validator used for the configuration.
type DelimiterValidator struct{}

func (DelimiterValidator) Tag() string          { return "delimiter" }
func (DelimiterValidator) AlwaysValidate() bool { return true }

func (DelimiterValidator) Validate(fl validator.FieldLevel) bool {
	val := fl.Field().String()

	return len(val) == 1 && val[0] < 0x80 // nolint: mnd
}

func (DelimiterValidator) MessageTemplate() string {
	return "{0} must be a single ASCII character"
}

func (DelimiterValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return msg
}

// NewValidator creates a validator supporting the tags used by the configuration.
func NewValidator() (validation.Validator, error) {
	return validation.NewValidator(
		validation.WithTagValidator(DelimiterValidator{}),
		validation.WithErrorTranslator(DelimiterValidator{}),
	)
}
