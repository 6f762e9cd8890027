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
	"fmt"
	"strings"

	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question"
)

// 内置的生成模板，面向法语和英语的教学平台
const promptTemplateFR = `Tu es un enseignant qui rédige des explications pédagogiques pour des questions à choix multiples.

Question :
%s

Options :
%s

Réponse(s) correcte(s) : %s

Rédige une explication claire et concise en français qui justifie la ou les bonnes réponses et explique pourquoi les autres options sont incorrectes.`

const promptTemplateEN = `You are a teacher writing educational explanations for multiple-choice questions.

Question:
%s

Options:
%s

Correct answer(s): %s

Write a clear and concise explanation in English that justifies the correct answer(s) and explains why the other options are wrong.`

const contextInstructionFR = "Appuie-toi sur le contexte suivant lorsque c'est pertinent :\n%s"
const contextInstructionEN = "Use the following context where relevant:\n%s"

// buildPrompt 生成最终喂给大模型的 prompt
// custom 非空时它就是完整模板，支持 {{question}}/{{options}}/{{answers}} 占位
func buildPrompt(que question.Question, lang domain.Language, custom, contextBlob string) string {
	options := formatOptions(que, lang)
	answers := strings.Join(que.CorrectLabels(), ", ")
	if custom != "" {
		prompt := custom
		prompt = strings.ReplaceAll(prompt, "{{question}}", que.Content)
		prompt = strings.ReplaceAll(prompt, "{{options}}", options)
		prompt = strings.ReplaceAll(prompt, "{{answers}}", answers)
		if contextBlob != "" {
			prompt = contextBlob + "\n\n" + prompt
		}
		return prompt
	}
	var prompt string
	if lang == domain.LanguageEN {
		prompt = fmt.Sprintf(promptTemplateEN, que.Content, options, answers)
		if contextBlob != "" {
			prompt += "\n\n" + fmt.Sprintf(contextInstructionEN, contextBlob)
		}
		return prompt
	}
	prompt = fmt.Sprintf(promptTemplateFR, que.Content, options, answers)
	if contextBlob != "" {
		prompt += "\n\n" + fmt.Sprintf(contextInstructionFR, contextBlob)
	}
	return prompt
}

// formatOptions 带正确性标记的选项列表
func formatOptions(que question.Question, lang domain.Language) string {
	marker := "(correcte)"
	if lang == domain.LanguageEN {
		marker = "(correct)"
	}
	lines := make([]string, 0, len(que.Options))
	for _, opt := range que.Options {
		line := fmt.Sprintf("%s. %s", opt.Label, opt.Content)
		if opt.Correct {
			line += " " + marker
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
