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

	"github.com/ecodeclub/qcmbank/internal/reward/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/repository"
	"gorm.io/gorm"
)

var ErrDuplicatedReward = repository.ErrDuplicatedReward

// RewardConfig 审核通过一条解析发多少分
type RewardConfig struct {
	BluePointAmount int64 `yaml:"bluePointAmount"`
}

//go:generate mockgen -source=./service.go -destination=../../mocks/reward.mock.go -package=rewardmocks -typed=true Service
type Service interface {
	// CreditApproval 解析审核通过，给作者发奖励
	// 同一个 (uid, qid) 只会发一次，重复调用返回 ErrDuplicatedReward
	CreditApproval(ctx context.Context, uid, qid int64) error
	// GetStats 没有任何积分记录的用户返回零值
	GetStats(ctx context.Context, uid int64) (domain.UserStats, error)
	PointLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.PointLog, error)
}

type service struct {
	repo repository.Repository
	cfg  RewardConfig
}

func NewService(repo repository.Repository, cfg RewardConfig) Service {
	return &service{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *service) CreditApproval(ctx context.Context, uid, qid int64) error {
	return s.repo.CreditPoints(ctx, domain.PointLog{
		Uid:    uid,
		Qid:    qid,
		Biz:    domain.BizExplanation,
		Type:   domain.PointTypeBlue,
		Amount: s.cfg.BluePointAmount,
		Desc:   "解析审核通过",
	})
}

func (s *service) GetStats(ctx context.Context, uid int64) (domain.UserStats, error) {
	stats, err := s.repo.StatsByUid(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserStats{Uid: uid}, nil
	}
	return stats, err
}

func (s *service) PointLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.PointLog, error) {
	return s.repo.PointLogs(ctx, uid, offset, limit)
}
