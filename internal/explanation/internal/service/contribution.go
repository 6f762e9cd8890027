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

	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/question"
)

var (
	ErrCapacityExceeded      = dao.ErrCapacityExceeded
	ErrDuplicateContribution = dao.ErrDuplicateContribution
	ErrInvalidInput          = errors.New("参数非法")
)

// MaxImages 一条解析最多带几张配图
const MaxImages = 5

// ContributionConfig 人工解析位的容量
type ContributionConfig struct {
	MaxSlots int `yaml:"maxSlots"`
}

type AdminBatchReq struct {
	ExamId      int64
	Uid         int64
	NumberSpec  string
	Title       string
	Content     string
	Images      []string
	DocumentUrl string
}

type AdminBatchResult struct {
	Created  []domain.Explanation
	Errors   []string
	NotFound []int
}

//go:generate mockgen -source=./contribution.go -destination=../../mocks/contribution.mock.go -package=expmocks -typed=true ContributionService
type ContributionService interface {
	// Submit 普通用户提交解析，返回写入后的记录和剩余的人工位
	Submit(ctx context.Context, e domain.Explanation) (domain.Explanation, int, error)
	// AdminSubmit 管理员按题号批量种入解析，直接是通过状态，不发奖励
	AdminSubmit(ctx context.Context, req AdminBatchReq) (AdminBatchResult, error)
}

type contributionService struct {
	repo   repository.Repository
	queSvc question.Service
	cfg    ContributionConfig
}

func NewContributionService(repo repository.Repository,
	queSvc question.Service,
	cfg ContributionConfig) ContributionService {
	return &contributionService{
		repo:   repo,
		queSvc: queSvc,
		cfg:    cfg,
	}
}

func (s *contributionService) Submit(ctx context.Context, e domain.Explanation) (domain.Explanation, int, error) {
	if err := s.validate(e); err != nil {
		return domain.Explanation{}, 0, err
	}
	e.Status = domain.StatusPending
	e.AiGenerated = false
	return s.repo.Create(ctx, e, s.cfg.MaxSlots)
}

func (s *contributionService) validate(e domain.Explanation) error {
	if e.Qid <= 0 {
		return fmt.Errorf("%w: 缺少题目 id", ErrInvalidInput)
	}
	if e.Content == "" && len(e.Images) == 0 && e.DocumentUrl == "" {
		return fmt.Errorf("%w: 解析内容为空", ErrInvalidInput)
	}
	if len(e.Images) > MaxImages {
		return fmt.Errorf("%w: 配图最多 %d 张", ErrInvalidInput, MaxImages)
	}
	return nil
}

func (s *contributionService) AdminSubmit(ctx context.Context, req AdminBatchReq) (AdminBatchResult, error) {
	var res AdminBatchResult
	questions, err := s.queSvc.ExamQuestions(ctx, req.ExamId)
	if err != nil {
		return res, fmt.Errorf("查找试卷题目失败: %w", err)
	}
	nums := parseNumberSpec(req.NumberSpec)
	for _, n := range nums {
		if n < 1 || n > len(questions) {
			res.NotFound = append(res.NotFound, n)
			continue
		}
		que := questions[n-1]
		created, _, err := s.repo.Create(ctx, domain.Explanation{
			Qid:         que.Id,
			Uid:         req.Uid,
			Title:       req.Title,
			Content:     req.Content,
			Images:      req.Images,
			DocumentUrl: req.DocumentUrl,
			// 管理员种入的内容不走审核，也不触发奖励
			Status: domain.StatusApproved,
		}, s.cfg.MaxSlots)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("题目 %d: %s", n, err.Error()))
			continue
		}
		res.Created = append(res.Created, created)
	}
	return res, nil
}
