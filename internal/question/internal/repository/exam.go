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
	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question/internal/repository/dao"
)

type ExamRepository interface {
	Create(ctx context.Context, exam domain.Exam) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Exam, error)
	FindByBiz(ctx context.Context, biz string, bizId int64) ([]domain.Exam, error)
	List(ctx context.Context, offset, limit int) ([]domain.Exam, int64, error)
}

type examRepository struct {
	dao dao.ExamDAO
}

func NewExamRepository(d dao.ExamDAO) ExamRepository {
	return &examRepository{dao: d}
}

func (e *examRepository) Create(ctx context.Context, exam domain.Exam) (int64, error) {
	return e.dao.Create(ctx, dao.Exam{
		Id:    exam.Id,
		Title: exam.Title,
		Biz:   exam.Biz,
		BizId: exam.BizId,
	})
}

func (e *examRepository) GetByID(ctx context.Context, id int64) (domain.Exam, error) {
	exam, err := e.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Exam{}, err
	}
	return e.toDomain(exam), nil
}

func (e *examRepository) FindByBiz(ctx context.Context, biz string, bizId int64) ([]domain.Exam, error) {
	exams, err := e.dao.FindByBiz(ctx, biz, bizId)
	if err != nil {
		return nil, err
	}
	return slice.Map(exams, func(idx int, src dao.Exam) domain.Exam {
		return e.toDomain(src)
	}), nil
}

func (e *examRepository) List(ctx context.Context, offset, limit int) ([]domain.Exam, int64, error) {
	exams, err := e.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := e.dao.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(exams, func(idx int, src dao.Exam) domain.Exam {
		return e.toDomain(src)
	}), total, nil
}

func (e *examRepository) toDomain(exam dao.Exam) domain.Exam {
	return domain.Exam{
		Id:    exam.Id,
		Title: exam.Title,
		Biz:   exam.Biz,
		BizId: exam.BizId,
		Utime: time.UnixMilli(exam.Utime),
	}
}
