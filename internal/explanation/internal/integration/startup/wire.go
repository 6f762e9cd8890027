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

//go:build wireinject

package startup

import (
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/explanation"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/event"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/service"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/web"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/ecodeclub/qcmbank/internal/reward"
	testioc "github.com/ecodeclub/qcmbank/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(q mq.MQ,
	queModule *question.Module,
	rewardModule *reward.Module,
	materialModule *material.Module,
	aiModule *ai.Module) (*explanation.Module, error) {
	wire.Build(
		testioc.InitDB,
		explanation.InitExplanationDAO,
		contributionConfig,
		voteConfig,
		generationConfig,
		repository.NewRepository,
		event.NewExplanationApprovedEventProducer,
		service.NewService,
		service.NewContributionService,
		service.NewVoteService,
		service.NewGenerationService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*question.Module), "Svc"),
		wire.FieldsOf(new(*reward.Module), "Svc"),
		wire.FieldsOf(new(*material.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.Struct(new(explanation.Module), "*"),
	)
	return new(explanation.Module), nil
}

func contributionConfig() service.ContributionConfig {
	return service.ContributionConfig{MaxSlots: 3}
}

func voteConfig() service.VoteConfig {
	return service.VoteConfig{RequiredLevel: 20, ApprovedWeight: 20}
}

func generationConfig() service.GenerationConfig {
	return service.GenerationConfig{
		Timeout: 10 * time.Second,
		// 测试里不想等
		Delay: 10 * time.Millisecond,
	}
}
