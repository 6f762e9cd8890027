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
	"gorm.io/gorm/clause"
)

type QuestionDAO interface {
	Save(ctx context.Context, que Question) (int64, error)
	GetByID(ctx context.Context, id int64) (Question, error)
	// FindByExam 按题号升序返回试卷内全部题目
	FindByExam(ctx context.Context, examId int64) ([]Question, error)
	Delete(ctx context.Context, id int64) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Save(ctx context.Context, que Question) (int64, error) {
	now := time.Now().UnixMilli()
	que.Ctime = now
	que.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"content", "options", "utime"}),
	}).Create(&que).Error
	return que.Id, err
}

func (g *GORMQuestionDAO) GetByID(ctx context.Context, id int64) (Question, error) {
	var q Question
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (g *GORMQuestionDAO) FindByExam(ctx context.Context, examId int64) ([]Question, error) {
	var qs []Question
	err := g.db.WithContext(ctx).
		Where("exam_id = ?", examId).
		Order("position ASC").
		Find(&qs).Error
	return qs, err
}

func (g *GORMQuestionDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Question{}).Error
}
