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

package config

import (
	"context"

	"github.com/ecodeclub/qcmbank/internal/ai/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 从数据库中读取业务配置
type HandlerBuilder struct {
	repo repository.ConfigRepository
}

func NewBuilder(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{
		repo: repo,
	}
}

func (b *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		// 读取配置
		cfg, err := b.repo.GetConfig(ctx, req.Biz)
		if err != nil {
			return domain.LLMResponse{}, err
		}
		// 调用方可以带上自定义的 PromptTemplate，覆盖库里的默认模板
		if req.Config.PromptTemplate != "" {
			cfg.PromptTemplate = req.Config.PromptTemplate
		}
		req.Config = cfg
		return next.Handle(ctx, req)
	})
}

var _ handler.Builder = &HandlerBuilder{}
