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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/repository/dao"
)

var ErrDuplicatedReward = dao.ErrDuplicatedPointLog

type Repository interface {
	CreditPoints(ctx context.Context, log domain.PointLog) error
	StatsByUid(ctx context.Context, uid int64) (domain.UserStats, error)
	PointLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.PointLog, error)
}

type rewardRepository struct {
	dao dao.RewardDAO
}

func NewRepository(d dao.RewardDAO) Repository {
	return &rewardRepository{dao: d}
}

func (r *rewardRepository) CreditPoints(ctx context.Context, log domain.PointLog) error {
	return r.dao.CreditPoints(ctx, dao.PointLog{
		Uid:    log.Uid,
		Qid:    log.Qid,
		Biz:    log.Biz,
		Type:   log.Type,
		Amount: log.Amount,
		Desc:   log.Desc,
	})
}

func (r *rewardRepository) StatsByUid(ctx context.Context, uid int64) (domain.UserStats, error) {
	stats, err := r.dao.StatsByUid(ctx, uid)
	if err != nil {
		return domain.UserStats{}, err
	}
	return domain.UserStats{
		Id:           stats.Id,
		Uid:          stats.Uid,
		BluePoints:   stats.BluePoints,
		TotalPoints:  stats.TotalPoints,
		OverallLevel: stats.OverallLevel,
	}, nil
}

func (r *rewardRepository) PointLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.PointLog, error) {
	logs, err := r.dao.PointLogs(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(logs, func(idx int, src dao.PointLog) domain.PointLog {
		return domain.PointLog{
			Id:     src.Id,
			Uid:    src.Uid,
			Qid:    src.Qid,
			Biz:    src.Biz,
			Type:   src.Type,
			Amount: src.Amount,
			Desc:   src.Desc,
			Ctime:  src.Ctime,
		}
	}), nil
}
