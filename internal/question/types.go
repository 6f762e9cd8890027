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

package question

import (
	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question/internal/service"
	"github.com/ecodeclub/qcmbank/internal/question/internal/web"
)

type AdminHandler = web.AdminHandler

type Service = service.Service
type ExamService = service.ExamService

type Question = domain.Question
type Option = domain.Option
type Exam = domain.Exam
type Target = domain.Target
type TargetKind = domain.TargetKind

const (
	TargetExam    = domain.TargetExam
	TargetCourse  = domain.TargetCourse
	TargetQcmBank = domain.TargetQcmBank
)
