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
	"time"

	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/event"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrExplanationNotFound = gorm.ErrRecordNotFound
	// ErrNotEditable 只有作者本人能改，而且只能改待审状态的
	ErrNotEditable = errors.New("解析不可修改")
	// ErrStatusSettled 审核过的解析不能换结论
	ErrStatusSettled = dao.ErrStatusSettled
)

//go:generate mockgen -source=./service.go -destination=../../mocks/explanation.mock.go -package=expmocks -typed=true Service
type Service interface {
	Detail(ctx context.Context, id int64) (domain.Explanation, error)
	// ListByQuestion 一道题的全部解析，带上 uid 自己投过的票
	ListByQuestion(ctx context.Context, qid, uid int64) ([]domain.Explanation, map[int64]domain.Vote, error)
	ListByAuthor(ctx context.Context, uid int64, offset, limit int) ([]domain.Explanation, error)
	// List 管理端分页
	List(ctx context.Context, offset, limit int) ([]domain.Explanation, int64, error)
	// Update 作者改自己还在待审的解析
	Update(ctx context.Context, e domain.Explanation) error
	// Delete 作者删自己的解析
	Delete(ctx context.Context, id, uid int64) error
	// AdminDelete 管理员删除，删除-再生成路径也走这里
	AdminDelete(ctx context.Context, id int64) error
	// UpdateStatus 首次从待审变成通过时发奖励事件
	// 事件发送失败只记日志，不影响状态变更
	// 已经有审核结论的解析换结论返回 ErrStatusSettled
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type service struct {
	repo     repository.Repository
	producer event.ExplanationApprovedEventProducer
	logger   *elog.Component
}

func NewService(repo repository.Repository,
	producer event.ExplanationApprovedEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("explanation.Service")),
	}
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Explanation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByQuestion(ctx context.Context, qid, uid int64) ([]domain.Explanation, map[int64]domain.Vote, error) {
	es, err := s.repo.FindByQid(ctx, qid)
	if err != nil {
		return nil, nil, err
	}
	if uid == 0 || len(es) == 0 {
		return es, map[int64]domain.Vote{}, nil
	}
	eids := make([]int64, 0, len(es))
	for _, e := range es {
		eids = append(eids, e.Id)
	}
	votes, err := s.repo.VotesOf(ctx, eids, uid)
	if err != nil {
		return nil, nil, err
	}
	return es, votes, nil
}

func (s *service) ListByAuthor(ctx context.Context, uid int64, offset, limit int) ([]domain.Explanation, error) {
	return s.repo.FindByUid(ctx, uid, offset, limit)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Explanation, int64, error) {
	var (
		eg    errgroup.Group
		es    []domain.Explanation
		total int64
	)
	eg.Go(func() error {
		var err error
		es, err = s.repo.List(ctx, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return es, total, eg.Wait()
}

func (s *service) Update(ctx context.Context, e domain.Explanation) error {
	existing, err := s.repo.GetByID(ctx, e.Id)
	if err != nil {
		return err
	}
	if existing.Uid != e.Uid || existing.Status != domain.StatusPending {
		return ErrNotEditable
	}
	return s.repo.Update(ctx, e)
}

func (s *service) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.DeleteByAuthor(ctx, id, uid)
}

func (s *service) AdminDelete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	prev, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("变更解析状态失败: %w", err)
	}
	// 只有第一次 待审 -> 通过 才发奖励，AI 解析不发
	if prev == domain.StatusPending && status == domain.StatusApproved && !e.AiGenerated {
		evt := event.ExplanationApprovedEvent{
			Uid: e.Uid,
			Qid: e.Qid,
			Eid: e.Id,
		}
		pctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if perr := s.producer.Produce(pctx, evt); perr != nil {
			s.logger.Error("发送解析审核通过事件失败",
				elog.Int64("eid", e.Id),
				elog.FieldErr(perr))
		}
	}
	return nil
}
