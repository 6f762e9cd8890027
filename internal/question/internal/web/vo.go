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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
)

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Qid struct {
	Qid int64 `json:"qid"`
}

type Eid struct {
	Eid int64 `json:"eid"`
}

type SaveQuestionReq struct {
	Question Question `json:"question"`
}

type SaveExamReq struct {
	Exam Exam `json:"exam"`
}

type Question struct {
	Id       int64    `json:"id"`
	ExamId   int64    `json:"examId"`
	Position int      `json:"position"`
	Content  string   `json:"content"`
	Options  []Option `json:"options"`
	Utime    int64    `json:"utime,omitempty"`
}

type Option struct {
	Label   string `json:"label"`
	Content string `json:"content"`
	Correct bool   `json:"correct"`
}

type Exam struct {
	Id        int64      `json:"id"`
	Title     string     `json:"title"`
	Biz       string     `json:"biz"`
	BizId     int64      `json:"bizId"`
	Questions []Question `json:"questions,omitempty"`
	Utime     int64      `json:"utime,omitempty"`
}

type ExamList struct {
	Total int64  `json:"total"`
	Exams []Exam `json:"exams"`
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Id:       q.Id,
		ExamId:   q.ExamId,
		Position: q.Position,
		Content:  q.Content,
		Options: slice.Map(q.Options, func(idx int, src Option) domain.Option {
			return domain.Option{
				Label:   src.Label,
				Content: src.Content,
				Correct: src.Correct,
			}
		}),
	}
}

func (e Exam) toDomain() domain.Exam {
	return domain.Exam{
		Id:    e.Id,
		Title: e.Title,
		Biz:   e.Biz,
		BizId: e.BizId,
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		Id:       q.Id,
		ExamId:   q.ExamId,
		Position: q.Position,
		Content:  q.Content,
		Options: slice.Map(q.Options, func(idx int, src domain.Option) Option {
			return Option{
				Label:   src.Label,
				Content: src.Content,
				Correct: src.Correct,
			}
		}),
		Utime: q.Utime.UnixMilli(),
	}
}

func newExam(e domain.Exam) Exam {
	return Exam{
		Id:    e.Id,
		Title: e.Title,
		Biz:   e.Biz,
		BizId: e.BizId,
		Questions: slice.Map(e.Questions, func(idx int, src domain.Question) Question {
			return newQuestion(src)
		}),
		Utime: e.Utime.UnixMilli(),
	}
}
