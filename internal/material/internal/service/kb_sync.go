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

	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/material/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service/extractor"
	"github.com/gotomicro/ego/core/elog"
)

const kbBiz = "material"

// KnowledgeBaseSyncService 把模块上下文文件推到 AI 平台的知识库里
type KnowledgeBaseSyncService interface {
	SyncModule(ctx context.Context, moduleId int64) error
}

type kbSyncService struct {
	repo      repository.ModuleContextFileRepository
	fetcher   Fetcher
	extractor extractor.Extractor
	kb        ai.KnowledgeBaseService
	// 平台上的知识库 ID
	knowledgeBaseID string
	logger          *elog.Component
}

func NewKnowledgeBaseSyncService(repo repository.ModuleContextFileRepository,
	fetcher Fetcher,
	ext extractor.Extractor,
	kb ai.KnowledgeBaseService,
	knowledgeBaseID string) KnowledgeBaseSyncService {
	return &kbSyncService{
		repo:            repo,
		fetcher:         fetcher,
		extractor:       ext,
		kb:              kb,
		knowledgeBaseID: knowledgeBaseID,
		logger:          elog.DefaultLogger.With(elog.FieldComponent("material.KnowledgeBaseSyncService")),
	}
}

func (s *kbSyncService) SyncModule(ctx context.Context, moduleId int64) error {
	files, err := s.repo.FindByModule(ctx, moduleId)
	if err != nil {
		return fmt.Errorf("查找模块文件失败: %w", err)
	}
	for _, f := range files {
		data, err := s.fetcher.Fetch(ctx, f.Url)
		if err != nil {
			s.logger.Warn("下载模块文件失败，跳过",
				elog.Int64("id", f.Id), elog.FieldErr(err))
			continue
		}
		text, err := s.extractor.Extract(f.Filename, data)
		if err != nil {
			s.logger.Warn("提取模块文件失败，跳过",
				elog.Int64("id", f.Id), elog.FieldErr(err))
			continue
		}
		err = s.kb.UploadFile(ctx, ai.KnowledgeBaseFile{
			Biz:             kbBiz,
			BizID:           f.Id,
			Name:            fmt.Sprintf("module_%d_%s", f.ModuleId, f.Filename),
			Data:            []byte(text),
			Type:            ai.RepositoryBaseTypeRetrieval,
			KnowledgeBaseID: s.knowledgeBaseID,
		})
		if err != nil {
			return fmt.Errorf("上传知识库失败: %w", err)
		}
	}
	return nil
}
