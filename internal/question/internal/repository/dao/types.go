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

package dao

import "github.com/ecodeclub/ekit/sqlx"

type Question struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 所属试卷
	ExamId int64 `gorm:"uniqueIndex:exam_pos"`
	// 试卷内题号，从 1 开始
	// 不依赖 ctime 排序，题号是录入时显式分配的
	Position int `gorm:"uniqueIndex:exam_pos"`
	// 题干
	Content string
	// 选项，带正确性标记
	Options sqlx.JsonColumn[[]Option] `gorm:"type:varchar(4096)"`
	Ctime   int64
	Utime   int64 `gorm:"index"`
}

type Option struct {
	Label   string `json:"label"`
	Content string `json:"content"`
	Correct bool   `json:"correct"`
}

type Exam struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Title string
	// course 或者 qcmBank
	Biz   string `gorm:"type:varchar(128);index:biz_biz_id"`
	BizId int64  `gorm:"index:biz_biz_id"`
	Ctime int64
	Utime int64 `gorm:"index"`
}
