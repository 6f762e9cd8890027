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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question/internal/repository/cache"
	"github.com/ecodeclub/qcmbank/internal/question/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type Repository interface {
	Save(ctx context.Context, que *domain.Question) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Question, error)
	FindByExam(ctx context.Context, examId int64) ([]domain.Question, error)
	Delete(ctx context.Context, id int64) error
}

type CachedRepository struct {
	dao    dao.QuestionDAO
	cache  cache.ExamCache
	logger *elog.Component
}

func NewCachedRepository(d dao.QuestionDAO, c cache.ExamCache) Repository {
	return &CachedRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (c *CachedRepository) Save(ctx context.Context, que *domain.Question) (int64, error) {
	id, err := c.dao.Save(ctx, c.toEntity(que))
	if err != nil {
		return 0, err
	}
	// 题目变了就直接淘汰整卷缓存
	err1 := c.cache.DelExamQuestions(ctx, que.ExamId)
	if err1 != nil {
		c.logger.Error("淘汰试卷缓存失败",
			elog.Int64("examId", que.ExamId), elog.FieldErr(err1))
	}
	return id, nil
}

func (c *CachedRepository) GetByID(ctx context.Context, id int64) (domain.Question, error) {
	q, err := c.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return c.toDomain(q), nil
}

func (c *CachedRepository) FindByExam(ctx context.Context, examId int64) ([]domain.Question, error) {
	qs, err := c.cache.GetExamQuestions(ctx, examId)
	if err == nil {
		return qs, nil
	}
	entities, err := c.dao.FindByExam(ctx, examId)
	if err != nil {
		return nil, err
	}
	qs = slice.Map(entities, func(idx int, src dao.Question) domain.Question {
		return c.toDomain(src)
	})
	err1 := c.cache.SetExamQuestions(ctx, examId, qs)
	if err1 != nil {
		c.logger.Error("回写试卷缓存失败",
			elog.Int64("examId", examId), elog.FieldErr(err1))
	}
	return qs, nil
}

func (c *CachedRepository) Delete(ctx context.Context, id int64) error {
	q, err := c.dao.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = c.dao.Delete(ctx, id); err != nil {
		return err
	}
	return c.cache.DelExamQuestions(ctx, q.ExamId)
}

func (c *CachedRepository) toEntity(que *domain.Question) dao.Question {
	return dao.Question{
		Id:       que.Id,
		ExamId:   que.ExamId,
		Position: que.Position,
		Content:  que.Content,
		Options: sqlx.JsonColumn[[]dao.Option]{
			Valid: true,
			Val: slice.Map(que.Options, func(idx int, src domain.Option) dao.Option {
				return dao.Option{
					Label:   src.Label,
					Content: src.Content,
					Correct: src.Correct,
				}
			}),
		},
	}
}

func (c *CachedRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:       q.Id,
		ExamId:   q.ExamId,
		Position: q.Position,
		Content:  q.Content,
		Options: slice.Map(q.Options.Val, func(idx int, src dao.Option) domain.Option {
			return domain.Option{
				Label:   src.Label,
				Content: src.Content,
				Correct: src.Correct,
			}
		}),
		Utime: time.UnixMilli(q.Utime),
	}
}
