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
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrCapacityExceeded 人工解析位已满
	ErrCapacityExceeded = errors.New("解析位已满")
	// ErrDuplicateContribution 同一个作者对同一道题只能有一条人工解析
	ErrDuplicateContribution = errors.New("重复提交解析")
	// ErrRedundantVote 同方向重复投票
	ErrRedundantVote = errors.New("重复投票")
	// ErrStatusSettled 审核结论只能从待审状态给出，给过就不能翻案
	ErrStatusSettled  = errors.New("解析已经审核过了")
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

const (
	statusPending  uint8 = 1
	statusApproved uint8 = 2
)

func isDuplicatedKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Explanation
// uq_qid_slot 同时钉死了两个不变量：
// 人工位 1..N 不会超配，AI 位（slot=0）全局只有一条
// uq_qid_uid_ai 保证同一作者同一道题只有一条人工解析
type Explanation struct {
	Id          int64                     `gorm:"primaryKey;autoIncrement"`
	Qid         int64                     `gorm:"not null;uniqueIndex:uq_qid_slot,priority:1;uniqueIndex:uq_qid_uid_ai,priority:1;comment:题目ID"`
	Slot        uint8                     `gorm:"not null;uniqueIndex:uq_qid_slot,priority:2;comment:0=AI位 1..N=人工位"`
	Uid         int64                     `gorm:"not null;index:idx_uid;uniqueIndex:uq_qid_uid_ai,priority:2;comment:作者ID"`
	AiGenerated uint8                     `gorm:"not null;default:0;uniqueIndex:uq_qid_uid_ai,priority:3"`
	Title       sql.NullString            `gorm:"type:varchar(255)"`
	Content     string                    `gorm:"type:text;not null"`
	Images      sqlx.JsonColumn[[]string] `gorm:"type:text;comment:配图url列表"`
	DocumentUrl sql.NullString            `gorm:"type:varchar(512);comment:附件url"`
	Status      uint8                     `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status;comment:1=待审 2=通过 3=拒绝"`
	Provider    string                    `gorm:"type:varchar(64);comment:AI解析的生成平台"`
	Language    string                    `gorm:"type:varchar(8)"`
	Upvotes     int64                     `gorm:"not null;default:0"`
	Downvotes   int64                     `gorm:"not null;default:0"`
	Ctime       int64
	Utime       int64
}

func (Explanation) TableName() string {
	return "explanations"
}

type ExplanationVote struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Eid       int64  `gorm:"not null;uniqueIndex:uq_eid_uid,priority:1;comment:解析ID"`
	Uid       int64  `gorm:"not null;uniqueIndex:uq_eid_uid,priority:2;index:idx_vote_uid;comment:投票人ID"`
	Direction string `gorm:"type:varchar(8);not null"`
	Weight    int64  `gorm:"not null;default:1"`
	Ctime     int64
	Utime     int64
}

func (ExplanationVote) TableName() string {
	return "explanation_votes"
}

type ExplanationDAO interface {
	// Create 给一道题分配一个人工解析位
	// remaining 是写入之后还剩多少个人工位
	Create(ctx context.Context, e Explanation, maxSlots int) (Explanation, int, error)
	// CreateAI 写入 AI 解析，AI 位已被占时返回已有记录和 false
	CreateAI(ctx context.Context, e Explanation) (Explanation, bool, error)
	GetAIByQid(ctx context.Context, qid int64) (Explanation, error)
	GetByID(ctx context.Context, id int64) (Explanation, error)
	FindByQid(ctx context.Context, qid int64) ([]Explanation, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Explanation, error)
	List(ctx context.Context, offset, limit int) ([]Explanation, error)
	Count(ctx context.Context) (int64, error)
	// Update 作者改自己的解析
	Update(ctx context.Context, e Explanation) error
	// Delete 硬删除，删除-再生成路径会用到
	Delete(ctx context.Context, id int64) error
	DeleteByAuthor(ctx context.Context, id, uid int64) error
	// UpdateStatus 返回变更前的状态
	// 已经审核过的解析换结论会返回 ErrStatusSettled
	UpdateStatus(ctx context.Context, id int64, status uint8) (uint8, error)
	// Vote 投票，同方向重复投返回 ErrRedundantVote
	Vote(ctx context.Context, eid, uid int64, direction string, weight int64) (Explanation, error)
	GetVote(ctx context.Context, eid, uid int64) (ExplanationVote, error)
	FindVotes(ctx context.Context, eids []int64, uid int64) ([]ExplanationVote, error)
	// HasApprovedExplanation 投票权重的依据
	HasApprovedExplanation(ctx context.Context, uid int64) (bool, error)
}

type GORMExplanationDAO struct {
	db *egorm.Component
}

func NewGORMExplanationDAO(db *egorm.Component) ExplanationDAO {
	return &GORMExplanationDAO{db: db}
}

func (g *GORMExplanationDAO) Create(ctx context.Context, e Explanation, maxSlots int) (Explanation, int, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	e.AiGenerated = 0
	var remaining int
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var used []uint8
		err := tx.Model(&Explanation{}).
			Where("qid = ? AND ai_generated = 0", e.Qid).
			Pluck("slot", &used).Error
		if err != nil {
			return err
		}
		if len(used) >= maxSlots {
			return ErrCapacityExceeded
		}
		err = tx.Where("qid = ? AND uid = ? AND ai_generated = 0", e.Qid, e.Uid).
			First(&Explanation{}).Error
		switch {
		case err == nil:
			return ErrDuplicateContribution
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}
		// 删过解析的题目位号会有空洞，补最小的空位
		e.Slot = smallestFreeSlot(used, maxSlots)
		remaining = maxSlots - len(used) - 1
		return tx.Create(&e).Error
	})
	if isDuplicatedKey(err) {
		// 并发提交被唯一索引兜住了，再查一次区分是哪条不变量
		return Explanation{}, 0, g.duplicatedErr(ctx, e)
	}
	if err != nil {
		return Explanation{}, 0, err
	}
	return e, remaining, nil
}

// smallestFreeSlot 在 1..maxSlots 里找最小的没被占的位号
func smallestFreeSlot(used []uint8, maxSlots int) uint8 {
	occupied := make(map[uint8]struct{}, len(used))
	for _, s := range used {
		occupied[s] = struct{}{}
	}
	for s := uint8(1); int(s) <= maxSlots; s++ {
		if _, ok := occupied[s]; !ok {
			return s
		}
	}
	// len(used) < maxSlots 时一定能找到空位
	return uint8(maxSlots)
}

// duplicatedErr 区分唯一索引冲突来自重复作者还是位子被抢光
func (g *GORMExplanationDAO) duplicatedErr(ctx context.Context, e Explanation) error {
	err := g.db.WithContext(ctx).
		Where("qid = ? AND uid = ? AND ai_generated = 0", e.Qid, e.Uid).
		First(&Explanation{}).Error
	if err == nil {
		return ErrDuplicateContribution
	}
	return ErrCapacityExceeded
}

func (g *GORMExplanationDAO) CreateAI(ctx context.Context, e Explanation) (Explanation, bool, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	e.Slot = 0
	e.AiGenerated = 1
	err := g.db.WithContext(ctx).Create(&e).Error
	if isDuplicatedKey(err) {
		// 并发生成，别人先落库了
		existing, gerr := g.GetAIByQid(ctx, e.Qid)
		if gerr != nil {
			return Explanation{}, false, gerr
		}
		return existing, false, nil
	}
	if err != nil {
		return Explanation{}, false, err
	}
	return e, true, nil
}

func (g *GORMExplanationDAO) GetAIByQid(ctx context.Context, qid int64) (Explanation, error) {
	var res Explanation
	err := g.db.WithContext(ctx).
		Where("qid = ? AND ai_generated = 1", qid).
		First(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) GetByID(ctx context.Context, id int64) (Explanation, error) {
	var res Explanation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) FindByQid(ctx context.Context, qid int64) ([]Explanation, error) {
	var res []Explanation
	err := g.db.WithContext(ctx).
		Where("qid = ?", qid).
		Order("slot ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Explanation, error) {
	var res []Explanation
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) List(ctx context.Context, offset, limit int) ([]Explanation, error) {
	var res []Explanation
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Explanation{}).Count(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) Update(ctx context.Context, e Explanation) error {
	res := g.db.WithContext(ctx).Model(&Explanation{}).
		Where("id = ? AND uid = ?", e.Id, e.Uid).
		Updates(map[string]any{
			"title":        e.Title,
			"content":      e.Content,
			"images":       e.Images,
			"document_url": e.DocumentUrl,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMExplanationDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).Delete(&Explanation{}).Error
		if err != nil {
			return err
		}
		return tx.Where("eid = ?", id).Delete(&ExplanationVote{}).Error
	})
}

func (g *GORMExplanationDAO) DeleteByAuthor(ctx context.Context, id, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND uid = ?", id, uid).Delete(&Explanation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		return tx.Where("eid = ?", id).Delete(&ExplanationVote{}).Error
	})
}

func (g *GORMExplanationDAO) UpdateStatus(ctx context.Context, id int64, status uint8) (uint8, error) {
	var prev uint8
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Explanation
		err := tx.Where("id = ?", id).First(&e).Error
		if err != nil {
			return err
		}
		prev = e.Status
		// 状态只能从待审走出去，重复下同样的结论算幂等
		if prev != statusPending && prev != status {
			return ErrStatusSettled
		}
		return tx.Model(&Explanation{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status": status,
				"utime":  time.Now().UnixMilli(),
			}).Error
	})
	return prev, err
}

func (g *GORMExplanationDAO) Vote(ctx context.Context, eid, uid int64, direction string, weight int64) (Explanation, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vote ExplanationVote
		err := tx.Where("eid = ? AND uid = ?", eid, uid).First(&vote).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return g.insertVote(tx, eid, uid, direction, weight, now)
		case err == nil:
			if vote.Direction == direction {
				return ErrRedundantVote
			}
			return g.switchVote(tx, vote, direction, weight, now)
		default:
			return err
		}
	})
	if err != nil {
		return Explanation{}, err
	}
	return g.GetByID(ctx, eid)
}

func (g *GORMExplanationDAO) insertVote(tx *gorm.DB, eid, uid int64, direction string, weight, now int64) error {
	err := tx.Create(&ExplanationVote{
		Eid:       eid,
		Uid:       uid,
		Direction: direction,
		Weight:    weight,
		Ctime:     now,
		Utime:     now,
	}).Error
	if err != nil {
		return err
	}
	res := tx.Model(&Explanation{}).
		Where("id = ?", eid).
		Updates(map[string]any{
			g.counterCol(direction): gorm.Expr("`"+g.counterCol(direction)+"` + ?", weight),
			"utime":                 now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrRecordNotFound
	}
	return nil
}

// switchVote 换方向：旧计数按旧权重回退，新计数按新权重累加，一个事务里完成
func (g *GORMExplanationDAO) switchVote(tx *gorm.DB, vote ExplanationVote, direction string, weight, now int64) error {
	err := tx.Model(&ExplanationVote{}).
		Where("id = ?", vote.Id).
		Updates(map[string]any{
			"direction": direction,
			"weight":    weight,
			"utime":     now,
		}).Error
	if err != nil {
		return err
	}
	oldCol := g.counterCol(vote.Direction)
	newCol := g.counterCol(direction)
	return tx.Model(&Explanation{}).
		Where("id = ?", vote.Eid).
		Updates(map[string]any{
			oldCol:  gorm.Expr("`"+oldCol+"` - ?", vote.Weight),
			newCol:  gorm.Expr("`"+newCol+"` + ?", weight),
			"utime": now,
		}).Error
}

func (g *GORMExplanationDAO) counterCol(direction string) string {
	if direction == "up" {
		return "upvotes"
	}
	return "downvotes"
}

func (g *GORMExplanationDAO) GetVote(ctx context.Context, eid, uid int64) (ExplanationVote, error) {
	var res ExplanationVote
	err := g.db.WithContext(ctx).
		Where("eid = ? AND uid = ?", eid, uid).
		First(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) FindVotes(ctx context.Context, eids []int64, uid int64) ([]ExplanationVote, error) {
	var res []ExplanationVote
	err := g.db.WithContext(ctx).
		Where("eid IN ? AND uid = ?", eids, uid).
		Find(&res).Error
	return res, err
}

func (g *GORMExplanationDAO) HasApprovedExplanation(ctx context.Context, uid int64) (bool, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Explanation{}).
		Where("uid = ? AND status = ? AND ai_generated = 0", uid, statusApproved).
		Count(&cnt).Error
	return cnt > 0, err
}
