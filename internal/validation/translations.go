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

package validation

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	translations := []struct {
		tag             string
		translation     string
		override        bool
		customTransFunc validator.TranslationFunc
	}{
		{
			tag:         "nefield",
			translation: "{0} must differ from {1}",
			override:    true,
			customTransFunc: func(ut ut.Translator, fe validator.FieldError) string {
				translation, err := ut.T(fe.Tag(), fe.Field(), "'"+strcase.ToSnake(fe.Param())+"'")
				if err != nil {
					return fe.Error()
				}

				return translation
			},
		},
		{
			tag:         "unique",
			translation: "{0} must not contain entries with the same {1}",
			override:    true,
			customTransFunc: func(ut ut.Translator, fe validator.FieldError) string {
				translation, err := ut.T(fe.Tag(), fe.Field(), "'"+strings.ToLower(fe.Param())+"'")
				if err != nil {
					return fe.Error()
				}

				return translation
			},
		},
	}

	for _, entry := range translations {
		transFunc := entry.customTransFunc
		if transFunc == nil {
			transFunc = translateFunc
		}

		if err := validate.RegisterTranslation(entry.tag, trans,
			registrationFunc(entry.tag, entry.translation, entry.override), transFunc); err != nil {
			return err
		}
	}

	return nil
}

func registrationFunc(tag string, translation string, override bool) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, translation, override)
	}
}

func translateFunc(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return t
}
