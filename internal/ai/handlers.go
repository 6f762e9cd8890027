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

package ai

import (
	"github.com/ecodeclub/qcmbank/internal/ai/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/platform/ali_deepseek"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// PlatformHandler 平台既是链条的出口，也承担探活
type PlatformHandler interface {
	handler.Handler
	handler.Pinger
}

// InitPlatform 按配置选择大模型平台，默认智谱
func InitPlatform() PlatformHandler {
	type Config struct {
		Platform string `yaml:"platform"`
	}
	var cfg Config
	// 没配置就走默认值
	_ = econf.UnmarshalKey("llm", &cfg)
	switch cfg.Platform {
	case ali_deepseek.Platform:
		return InitAliDeepseek()
	default:
		return InitZhipu()
	}
}

func InitZhipu() *zhipu.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("zhipu", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := zhipu.NewHandler(cfg.APIKey)
	if err != nil {
		panic(err)
	}
	return h
}

func InitAliDeepseek() *ali_deepseek.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ali_deepseek", &cfg)
	if err != nil {
		panic(err)
	}
	return ali_deepseek.NewHandler(cfg.APIKey)
}

func InitHandlerFacade(common []handler.Builder, platform PlatformHandler) *biz.FacadeHandler {
	// log -> cfg -> record -> platform
	gen := handler.NewCompositionHandler(common, platform)
	return biz.NewHandler(map[string]handler.Handler{
		domain.BizExplanationGenerate: gen,
	})
}

func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg, record}
}

func InitLLMService(facade *biz.FacadeHandler, platform PlatformHandler) llm.Service {
	return llm.NewLLMService(facade, platform)
}
