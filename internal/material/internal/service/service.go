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
	"strings"

	"github.com/ecodeclub/qcmbank/internal/material/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/material/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service/extractor"
	"github.com/gotomicro/ego/core/elog"
)

// adhocSeparator 临时上传文档的分隔标题
const adhocSeparator = "document fourni"

type Service interface {
	Save(ctx context.Context, f domain.ModuleContextFile) (int64, error)
	List(ctx context.Context, moduleId int64) ([]domain.ModuleContextFile, error)
	Delete(ctx context.Context, id int64) error
	// Extract 从上传的文档里提取纯文本
	Extract(ctx context.Context, doc domain.UploadedDocument) (string, error)
	// BuildContext 聚合一个模块下所有文件的文本，供 AI 生成解析使用
	// 单个文件失败只跳过，不会让整个聚合失败
	BuildContext(ctx context.Context, moduleId int64, adhoc *domain.UploadedDocument) (string, error)
}

type service struct {
	repo      repository.ModuleContextFileRepository
	fetcher   Fetcher
	extractor extractor.Extractor
	logger    *elog.Component
}

func NewService(repo repository.ModuleContextFileRepository,
	fetcher Fetcher,
	ext extractor.Extractor) Service {
	return &service{
		repo:      repo,
		fetcher:   fetcher,
		extractor: ext,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("material.Service")),
	}
}

func (s *service) Save(ctx context.Context, f domain.ModuleContextFile) (int64, error) {
	return s.repo.Save(ctx, f)
}

func (s *service) List(ctx context.Context, moduleId int64) ([]domain.ModuleContextFile, error) {
	return s.repo.FindByModule(ctx, moduleId)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Extract(ctx context.Context, doc domain.UploadedDocument) (string, error) {
	return s.extractor.Extract(doc.Filename, doc.Data)
}

func (s *service) BuildContext(ctx context.Context, moduleId int64, adhoc *domain.UploadedDocument) (string, error) {
	var fragments []string
	if moduleId != 0 {
		files, err := s.repo.FindByModule(ctx, moduleId)
		if err != nil {
			return "", fmt.Errorf("查找模块文件失败: %w", err)
		}
		for _, f := range files {
			text, ok := s.extractOne(ctx, f)
			if !ok || text == "" {
				continue
			}
			fragments = append(fragments, fmt.Sprintf("--- %s ---\n%s", f.Filename, text))
		}
	}
	if adhoc != nil {
		text, err := s.extractor.Extract(adhoc.Filename, adhoc.Data)
		if err != nil {
			s.logger.Warn("提取上传文档失败，跳过",
				elog.String("filename", adhoc.Filename),
				elog.FieldErr(err))
		} else if text != "" {
			fragments = append(fragments, fmt.Sprintf("--- %s ---\n%s", adhocSeparator, text))
		}
	}
	return strings.Join(fragments, "\n\n"), nil
}

// extractOne 拉取并提取单个文件，失败只记日志
func (s *service) extractOne(ctx context.Context, f domain.ModuleContextFile) (string, bool) {
	data, err := s.fetcher.Fetch(ctx, f.Url)
	if err != nil {
		s.logger.Warn("下载模块文件失败，跳过",
			elog.Int64("id", f.Id),
			elog.String("filename", f.Filename),
			elog.FieldErr(err))
		return "", false
	}
	text, err := s.extractor.Extract(f.Filename, data)
	if err != nil {
		s.logger.Warn("提取模块文件失败，跳过",
			elog.Int64("id", f.Id),
			elog.String("filename", f.Filename),
			elog.FieldErr(err))
		return "", false
	}
	return text, true
}
