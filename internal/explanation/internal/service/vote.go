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
	"fmt"

	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/reward"
)

var ErrRedundantVote = dao.ErrRedundantVote

// ErrInsufficientLevel 等级不够，带上要求值和当前值给前端展示
type ErrInsufficientLevel struct {
	Required int64
	Current  int64
}

func (e *ErrInsufficientLevel) Error() string {
	return fmt.Sprintf("等级不够，需要 %d 级，当前 %d 级", e.Required, e.Current)
}

// VoteConfig 投票门槛和权重
type VoteConfig struct {
	RequiredLevel int64 `yaml:"requiredLevel"`
	// 有过审核通过解析的用户投票的权重
	ApprovedWeight int64 `yaml:"approvedWeight"`
}

//go:generate mockgen -source=./vote.go -destination=../../mocks/vote.mock.go -package=expmocks -typed=true VoteService
type VoteService interface {
	// Vote 同方向重复投返回 ErrRedundantVote，换方向原子换票
	Vote(ctx context.Context, eid, uid int64, direction domain.Direction) (domain.VoteResult, error)
}

type voteService struct {
	repo      repository.Repository
	rewardSvc reward.Service
	cfg       VoteConfig
}

func NewVoteService(repo repository.Repository,
	rewardSvc reward.Service,
	cfg VoteConfig) VoteService {
	return &voteService{
		repo:      repo,
		rewardSvc: rewardSvc,
		cfg:       cfg,
	}
}

func (s *voteService) Vote(ctx context.Context, eid, uid int64, direction domain.Direction) (domain.VoteResult, error) {
	if direction != domain.DirectionUp && direction != domain.DirectionDown {
		return domain.VoteResult{}, ErrInvalidInput
	}
	stats, err := s.rewardSvc.GetStats(ctx, uid)
	if err != nil {
		return domain.VoteResult{}, fmt.Errorf("查询用户等级失败: %w", err)
	}
	if stats.OverallLevel < s.cfg.RequiredLevel {
		return domain.VoteResult{}, &ErrInsufficientLevel{
			Required: s.cfg.RequiredLevel,
			Current:  stats.OverallLevel,
		}
	}
	// 权重每次投票都重新算
	weight, err := s.weightOf(ctx, uid)
	if err != nil {
		return domain.VoteResult{}, err
	}
	e, err := s.repo.Vote(ctx, eid, uid, direction, weight)
	if err != nil {
		return domain.VoteResult{}, err
	}
	return domain.VoteResult{
		Upvotes:   e.Upvotes,
		Downvotes: e.Downvotes,
		Weight:    weight,
	}, nil
}

func (s *voteService) weightOf(ctx context.Context, uid int64) (int64, error) {
	approved, err := s.repo.HasApprovedExplanation(ctx, uid)
	if err != nil {
		return 0, fmt.Errorf("查询作者解析失败: %w", err)
	}
	if approved {
		return s.cfg.ApprovedWeight, nil
	}
	return 1, nil
}
