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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/qcmbank/internal/question/internal/domain"
	"github.com/pkg/errors"
)

var (
	ErrExamNotFound = errors.New("试卷没找到")
)

const (
	expiration = 24 * time.Hour
)

type ExamCache interface {
	SetExamQuestions(ctx context.Context, examId int64, qs []domain.Question) error
	GetExamQuestions(ctx context.Context, examId int64) ([]domain.Question, error)
	DelExamQuestions(ctx context.Context, examId int64) error
}

type ExamECache struct {
	ec ecache.Cache
}

func NewExamECache(ec ecache.Cache) ExamCache {
	return &ExamECache{
		ec: &ecache.NamespaceCache{
			Namespace: "exam:",
			C:         ec,
		},
	}
}

func (e *ExamECache) SetExamQuestions(ctx context.Context, examId int64, qs []domain.Question) error {
	data, err := json.Marshal(qs)
	if err != nil {
		return errors.Wrap(err, "序列化试卷题目失败")
	}
	return e.ec.Set(ctx, e.questionsKey(examId), string(data), expiration)
}

func (e *ExamECache) GetExamQuestions(ctx context.Context, examId int64) ([]domain.Question, error) {
	val := e.ec.Get(ctx, e.questionsKey(examId))
	if val.KeyNotFound() {
		return nil, ErrExamNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var qs []domain.Question
	err := json.Unmarshal([]byte(val.Val.(string)), &qs)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化试卷题目失败")
	}
	return qs, nil
}

func (e *ExamECache) DelExamQuestions(ctx context.Context, examId int64) error {
	_, err := e.ec.Delete(ctx, e.questionsKey(examId))
	return err
}

func (e *ExamECache) questionsKey(examId int64) string {
	return fmt.Sprintf("questions:%d", examId)
}
