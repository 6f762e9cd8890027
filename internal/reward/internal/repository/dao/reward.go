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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDuplicatedPointLog 同一个 (uid, qid, biz) 已经发过奖励了
	// 消息重投的时候依赖这个错误去重
	ErrDuplicatedPointLog = errors.New("积分流水已存在")
)

const uniqueIndexErrNo uint16 = 1062

type RewardDAO interface {
	// CreditPoints 在一个事务里写流水并更新聚合数据
	CreditPoints(ctx context.Context, log PointLog) error
	StatsByUid(ctx context.Context, uid int64) (UserStats, error)
	PointLogs(ctx context.Context, uid int64, offset, limit int) ([]PointLog, error)
}

type GORMRewardDAO struct {
	db *egorm.Component
}

func NewGORMRewardDAO(db *egorm.Component) RewardDAO {
	return &GORMRewardDAO{db: db}
}

func (g *GORMRewardDAO) CreditPoints(ctx context.Context, log PointLog) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		log.Ctime = now
		log.Utime = now
		if err := tx.Create(&log).Error; err != nil {
			var me *mysql.MySQLError
			if (errors.As(err, &me) && me.Number == uniqueIndexErrNo) ||
				errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: uid=%d, qid=%d", ErrDuplicatedPointLog, log.Uid, log.Qid)
			}
			return err
		}

		return g.creditStats(tx, log, now)
	})
}

// creditStats 把本次奖励累加到用户聚合数据上
// 先锁行再累加，并发发奖的时候后来的事务会等前一个提交
func (g *GORMRewardDAO) creditStats(tx *gorm.DB, log PointLog, now int64) error {
	var stats UserStats
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uid = ?", log.Uid).First(&stats).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		stats = UserStats{
			Uid:          log.Uid,
			BluePoints:   1,
			TotalPoints:  log.Amount,
			OverallLevel: log.Amount / 100,
			Version:      1,
			Ctime:        now,
			Utime:        now,
		}
		err = tx.Create(&stats).Error
		if err == nil {
			return nil
		}
		var me *mysql.MySQLError
		if !errors.As(err, &me) || me.Number != uniqueIndexErrNo {
			return err
		}
		// 两个事务同时给新用户发第一笔奖励，输的这个重新走锁行更新
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", log.Uid).First(&stats).Error
		if err != nil {
			return err
		}
	case err != nil:
		return err
	}
	res := tx.Model(&UserStats{}).
		Where("uid = ? AND version = ?", log.Uid, stats.Version).
		Updates(map[string]any{
			"blue_points":   stats.BluePoints + 1,
			"total_points":  stats.TotalPoints + log.Amount,
			"overall_level": (stats.TotalPoints + log.Amount) / 100,
			"version":       stats.Version + 1,
			"utime":         now,
		})
	if res.Error != nil {
		return fmt.Errorf("更新用户聚合数据失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// 持有行锁的情况下版本号不该变，真碰上了宁可回滚流水也不丢积分
		return fmt.Errorf("更新用户聚合数据失败: uid=%d 版本冲突", log.Uid)
	}
	return nil
}

func (g *GORMRewardDAO) StatsByUid(ctx context.Context, uid int64) (UserStats, error) {
	var res UserStats
	err := g.db.WithContext(ctx).First(&res, "uid = ?", uid).Error
	return res, err
}

func (g *GORMRewardDAO) PointLogs(ctx context.Context, uid int64, offset, limit int) ([]PointLog, error) {
	var res []PointLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type PointLog struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex:uid_qid_biz"`
	Qid int64 `gorm:"uniqueIndex:uid_qid_biz"`
	Biz string `gorm:"type:varchar(128);uniqueIndex:uid_qid_biz"`
	// 积分类型，目前只有 blue
	Type   string `gorm:"type:varchar(64)"`
	Amount int64
	Desc   string `gorm:"type:varchar(256)"`
	Ctime  int64
	Utime  int64
}

type UserStats struct {
	Id           int64 `gorm:"primaryKey,autoIncrement"`
	Uid          int64 `gorm:"uniqueIndex:unq_uid"`
	BluePoints   int64
	TotalPoints  int64
	OverallLevel int64
	// 乐观锁版本号
	Version int64
	Ctime   int64
	Utime   int64
}
