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

package domain

import (
	"time"
)

// Question 一道 QCM 题目，固定属于一份试卷
type Question struct {
	Id     int64
	ExamId int64
	// 试卷内的题号，从 1 开始，录入的时候就分配好
	// 管理端和批量生成都依赖这个字段来定位题目
	Position int
	Content  string
	Options  []Option

	Utime time.Time
}

// Option QCM 的一个选项
type Option struct {
	// A B C D 这种
	Label   string
	Content string
	Correct bool
}

// CorrectLabels 正确选项的标号
func (q Question) CorrectLabels() []string {
	res := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.Correct {
			res = append(res, opt.Label)
		}
	}
	return res
}
