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

	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/question/internal/repository"
)

type ExamService interface {
	Create(ctx context.Context, exam domain.Exam) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Exam, error)
	List(ctx context.Context, offset, limit int) ([]domain.Exam, int64, error)
}

type examService struct {
	repo    repository.ExamRepository
	queRepo repository.Repository
}

func NewExamService(repo repository.ExamRepository, queRepo repository.Repository) ExamService {
	return &examService{
		repo:    repo,
		queRepo: queRepo,
	}
}

func (s *examService) Create(ctx context.Context, exam domain.Exam) (int64, error) {
	return s.repo.Create(ctx, exam)
}

func (s *examService) Detail(ctx context.Context, id int64) (domain.Exam, error) {
	exam, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Exam{}, err
	}
	qs, err := s.queRepo.FindByExam(ctx, id)
	if err != nil {
		return domain.Exam{}, err
	}
	exam.Questions = qs
	return exam, nil
}

func (s *examService) List(ctx context.Context, offset, limit int) ([]domain.Exam, int64, error) {
	return s.repo.List(ctx, offset, limit)
}
