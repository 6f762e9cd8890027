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

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type ExamDAO interface {
	Create(ctx context.Context, exam Exam) (int64, error)
	GetByID(ctx context.Context, id int64) (Exam, error)
	// FindByBiz 返回课程/题库下的全部试卷
	// id 升序，保证批量路径的编号可复现
	FindByBiz(ctx context.Context, biz string, bizId int64) ([]Exam, error)
	List(ctx context.Context, offset, limit int) ([]Exam, error)
	Count(ctx context.Context) (int64, error)
}

type GORMExamDAO struct {
	db *egorm.Component
}

func NewGORMExamDAO(db *egorm.Component) ExamDAO {
	return &GORMExamDAO{db: db}
}

func (g *GORMExamDAO) Create(ctx context.Context, exam Exam) (int64, error) {
	now := time.Now().UnixMilli()
	exam.Ctime = now
	exam.Utime = now
	err := g.db.WithContext(ctx).Create(&exam).Error
	return exam.Id, err
}

func (g *GORMExamDAO) GetByID(ctx context.Context, id int64) (Exam, error) {
	var e Exam
	err := g.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return e, err
}

func (g *GORMExamDAO) FindByBiz(ctx context.Context, biz string, bizId int64) ([]Exam, error) {
	var res []Exam
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, bizId).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMExamDAO) List(ctx context.Context, offset, limit int) ([]Exam, error) {
	var res []Exam
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMExamDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Exam{}).Select("COUNT(id)").Count(&res).Error
	return res, err
}
