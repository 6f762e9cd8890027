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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
)

type Repository interface {
	Create(ctx context.Context, e domain.Explanation, maxSlots int) (domain.Explanation, int, error)
	CreateAI(ctx context.Context, e domain.Explanation) (domain.Explanation, bool, error)
	GetAIByQid(ctx context.Context, qid int64) (domain.Explanation, error)
	GetByID(ctx context.Context, id int64) (domain.Explanation, error)
	FindByQid(ctx context.Context, qid int64) ([]domain.Explanation, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Explanation, error)
	List(ctx context.Context, offset, limit int) ([]domain.Explanation, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, e domain.Explanation) error
	Delete(ctx context.Context, id int64) error
	DeleteByAuthor(ctx context.Context, id, uid int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Status, error)
	Vote(ctx context.Context, eid, uid int64, direction domain.Direction, weight int64) (domain.Explanation, error)
	// VotesOf 查 uid 在这批解析上投过的票，key 是解析 id
	VotesOf(ctx context.Context, eids []int64, uid int64) (map[int64]domain.Vote, error)
	HasApprovedExplanation(ctx context.Context, uid int64) (bool, error)
}

type explanationRepository struct {
	dao dao.ExplanationDAO
}

func NewRepository(d dao.ExplanationDAO) Repository {
	return &explanationRepository{dao: d}
}

func (r *explanationRepository) Create(ctx context.Context, e domain.Explanation, maxSlots int) (domain.Explanation, int, error) {
	created, remaining, err := r.dao.Create(ctx, r.toEntity(e), maxSlots)
	if err != nil {
		return domain.Explanation{}, 0, err
	}
	return r.toDomain(created), remaining, nil
}

func (r *explanationRepository) CreateAI(ctx context.Context, e domain.Explanation) (domain.Explanation, bool, error) {
	created, ok, err := r.dao.CreateAI(ctx, r.toEntity(e))
	if err != nil {
		return domain.Explanation{}, false, err
	}
	return r.toDomain(created), ok, nil
}

func (r *explanationRepository) GetAIByQid(ctx context.Context, qid int64) (domain.Explanation, error) {
	e, err := r.dao.GetAIByQid(ctx, qid)
	if err != nil {
		return domain.Explanation{}, err
	}
	return r.toDomain(e), nil
}

func (r *explanationRepository) GetByID(ctx context.Context, id int64) (domain.Explanation, error) {
	e, err := r.dao.GetByID(ctx, id)
	if err != nil {
		return domain.Explanation{}, err
	}
	return r.toDomain(e), nil
}

func (r *explanationRepository) FindByQid(ctx context.Context, qid int64) ([]domain.Explanation, error) {
	es, err := r.dao.FindByQid(ctx, qid)
	return r.toDomains(es), err
}

func (r *explanationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Explanation, error) {
	es, err := r.dao.FindByUid(ctx, uid, offset, limit)
	return r.toDomains(es), err
}

func (r *explanationRepository) List(ctx context.Context, offset, limit int) ([]domain.Explanation, error) {
	es, err := r.dao.List(ctx, offset, limit)
	return r.toDomains(es), err
}

func (r *explanationRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *explanationRepository) Update(ctx context.Context, e domain.Explanation) error {
	return r.dao.Update(ctx, r.toEntity(e))
}

func (r *explanationRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *explanationRepository) DeleteByAuthor(ctx context.Context, id, uid int64) error {
	return r.dao.DeleteByAuthor(ctx, id, uid)
}

func (r *explanationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Status, error) {
	prev, err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	return domain.Status(prev), err
}

func (r *explanationRepository) Vote(ctx context.Context, eid, uid int64, direction domain.Direction, weight int64) (domain.Explanation, error) {
	e, err := r.dao.Vote(ctx, eid, uid, direction.String(), weight)
	if err != nil {
		return domain.Explanation{}, err
	}
	return r.toDomain(e), nil
}

func (r *explanationRepository) VotesOf(ctx context.Context, eids []int64, uid int64) (map[int64]domain.Vote, error) {
	votes, err := r.dao.FindVotes(ctx, eids, uid)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Vote, len(votes))
	for _, v := range votes {
		res[v.Eid] = domain.Vote{
			Id:        v.Id,
			Eid:       v.Eid,
			Uid:       v.Uid,
			Direction: domain.Direction(v.Direction),
			Weight:    v.Weight,
			Utime:     v.Utime,
		}
	}
	return res, nil
}

func (r *explanationRepository) HasApprovedExplanation(ctx context.Context, uid int64) (bool, error) {
	return r.dao.HasApprovedExplanation(ctx, uid)
}

func (r *explanationRepository) toDomains(es []dao.Explanation) []domain.Explanation {
	return slice.Map(es, func(_ int, src dao.Explanation) domain.Explanation {
		return r.toDomain(src)
	})
}

func (r *explanationRepository) toDomain(e dao.Explanation) domain.Explanation {
	return domain.Explanation{
		Id:          e.Id,
		Qid:         e.Qid,
		Uid:         e.Uid,
		Title:       e.Title.String,
		Content:     e.Content,
		Images:      e.Images.Val,
		DocumentUrl: e.DocumentUrl.String,
		Status:      domain.Status(e.Status),
		Slot:        int(e.Slot),
		AiGenerated: e.AiGenerated == 1,
		Provider:    e.Provider,
		Language:    domain.Language(e.Language),
		Upvotes:     e.Upvotes,
		Downvotes:   e.Downvotes,
		Ctime:       e.Ctime,
		Utime:       e.Utime,
	}
}

func (r *explanationRepository) toEntity(e domain.Explanation) dao.Explanation {
	var ai uint8
	if e.AiGenerated {
		ai = 1
	}
	return dao.Explanation{
		Id:          e.Id,
		Qid:         e.Qid,
		Uid:         e.Uid,
		Title:       sqlx.NewNullString(e.Title),
		Content:     e.Content,
		Images:      sqlx.JsonColumn[[]string]{Valid: true, Val: e.Images},
		DocumentUrl: sqlx.NewNullString(e.DocumentUrl),
		Status:      e.Status.ToUint8(),
		Slot:        uint8(e.Slot),
		AiGenerated: ai,
		Provider:    e.Provider,
		Language:    string(e.Language),
	}
}
