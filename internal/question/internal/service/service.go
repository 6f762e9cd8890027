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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question/internal/repository"
)

var ErrUnknownTarget = errors.New("未知的目标类型")

//go:generate mockgen -source=./service.go -destination=../../mocks/question.mock.go -package=quemocks -typed=true Service
type Service interface {
	Save(ctx context.Context, que *domain.Question) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Question, error)
	Delete(ctx context.Context, id int64) error
	// ExamQuestions 按题号升序返回一份试卷的题目
	ExamQuestions(ctx context.Context, examId int64) ([]domain.Question, error)
	// TargetQuestions 解析批量目标
	// exam 返回整卷；course/qcmBank 按试卷 id 升序拼接各卷题目
	TargetQuestions(ctx context.Context, target domain.Target) ([]domain.Question, error)
}

type service struct {
	repo     repository.Repository
	examRepo repository.ExamRepository
}

func NewService(repo repository.Repository, examRepo repository.ExamRepository) Service {
	return &service{
		repo:     repo,
		examRepo: examRepo,
	}
}

func (s *service) Save(ctx context.Context, que *domain.Question) (int64, error) {
	return s.repo.Save(ctx, que)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Question, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ExamQuestions(ctx context.Context, examId int64) ([]domain.Question, error) {
	return s.repo.FindByExam(ctx, examId)
}

func (s *service) TargetQuestions(ctx context.Context, target domain.Target) ([]domain.Question, error) {
	switch target.Kind {
	case domain.TargetExam:
		return s.ExamQuestions(ctx, target.Id)
	case domain.TargetCourse, domain.TargetQcmBank:
		exams, err := s.examRepo.FindByBiz(ctx, string(target.Kind), target.Id)
		if err != nil {
			return nil, err
		}
		var res []domain.Question
		for _, exam := range exams {
			qs, err := s.repo.FindByExam(ctx, exam.Id)
			if err != nil {
				return nil, err
			}
			res = append(res, qs...)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target.Kind)
	}
}
