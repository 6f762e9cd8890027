// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"testing"

	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/stretchr/testify/assert"
)

func testQuestion() question.Question {
	return question.Question{
		Id:      1,
		Content: "Quelle est la capitale de la France ?",
		Options: []question.Option{
			{Label: "A", Content: "Lyon"},
			{Label: "B", Content: "Paris", Correct: true},
			{Label: "C", Content: "Marseille"},
		},
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()
	que := testQuestion()

	t.Run("法语模板", func(t *testing.T) {
		prompt := buildPrompt(que, domain.LanguageFR, "", "")
		assert.Contains(t, prompt, "Quelle est la capitale de la France ?")
		assert.Contains(t, prompt, "B. Paris (correcte)")
		assert.Contains(t, prompt, "A. Lyon")
		assert.NotContains(t, prompt, "A. Lyon (correcte)")
		assert.Contains(t, prompt, "Réponse(s) correcte(s) : B")
	})

	t.Run("英语模板", func(t *testing.T) {
		prompt := buildPrompt(que, domain.LanguageEN, "", "")
		assert.Contains(t, prompt, "B. Paris (correct)")
		assert.Contains(t, prompt, "Correct answer(s): B")
		assert.NotContains(t, prompt, "correcte")
	})

	t.Run("自定义模板替换占位符", func(t *testing.T) {
		prompt := buildPrompt(que, domain.LanguageFR,
			"Q={{question}} O={{options}} A={{answers}}", "")
		assert.Equal(t, "Q=Quelle est la capitale de la France ? O=A. Lyon\nB. Paris (correcte)\nC. Marseille A=B", prompt)
	})

	t.Run("自定义模板带上下文", func(t *testing.T) {
		prompt := buildPrompt(que, domain.LanguageFR, "A={{answers}}", "du contexte")
		assert.Equal(t, "du contexte\n\nA=B", prompt)
	})

	t.Run("内置模板带上下文", func(t *testing.T) {
		prompt := buildPrompt(que, domain.LanguageEN, "", "some context")
		assert.Contains(t, prompt, "Use the following context where relevant:\nsome context")
	})
}

func TestFormatOptionsMultipleCorrect(t *testing.T) {
	t.Parallel()
	que := question.Question{
		Content: "Lesquelles sont des villes françaises ?",
		Options: []question.Option{
			{Label: "A", Content: "Paris", Correct: true},
			{Label: "B", Content: "Berlin"},
			{Label: "C", Content: "Lille", Correct: true},
		},
	}
	prompt := buildPrompt(que, domain.LanguageFR, "", "")
	assert.Contains(t, prompt, "Réponse(s) correcte(s) : A, C")
}
