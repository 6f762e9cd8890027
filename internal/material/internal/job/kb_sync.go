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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/qcmbank/internal/material/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ejob"
)

// KnowledgeBaseSyncJobStarter 定时把各模块的上下文文件推到知识库
type KnowledgeBaseSyncJobStarter struct {
	repo    repository.ModuleContextFileRepository
	syncSvc service.KnowledgeBaseSyncService
	logger  *elog.Component
}

func NewKnowledgeBaseSyncJobStarter(repo repository.ModuleContextFileRepository,
	syncSvc service.KnowledgeBaseSyncService) *KnowledgeBaseSyncJobStarter {
	return &KnowledgeBaseSyncJobStarter{
		repo:    repo,
		syncSvc: syncSvc,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("material.KnowledgeBaseSyncJobStarter")),
	}
}

func (s *KnowledgeBaseSyncJobStarter) Start(ctx ejob.Context) error {
	listCtx, cancel := context.WithTimeout(ctx.Ctx, time.Second*3)
	ids, err := s.repo.ModuleIds(listCtx)
	cancel()
	if err != nil {
		return err
	}
	for _, id := range ids {
		// 单个模块失败不影响其它模块
		err := s.syncSvc.SyncModule(ctx.Ctx, id)
		if err != nil {
			s.logger.Error("同步模块知识库失败",
				elog.Int64("moduleId", id),
				elog.FieldErr(err))
		}
	}
	return nil
}
