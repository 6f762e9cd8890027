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

import "time"

const (
	BizCourse  = "course"
	BizQcmBank = "qcmBank"
)

// Exam 一份试卷，挂在课程或者题库下面
type Exam struct {
	Id    int64
	Title string
	// course 或者 qcmBank
	Biz   string
	BizId int64

	Questions []Question

	Utime time.Time
}

type TargetKind string

const (
	TargetExam    TargetKind = "exam"
	TargetCourse  TargetKind = "course"
	TargetQcmBank TargetKind = "qcmBank"
)

// Target 批量操作的目标，要么是一份试卷，要么是课程/题库下的全部试卷
type Target struct {
	Kind TargetKind
	Id   int64
}
