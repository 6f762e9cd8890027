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

package explanation

import (
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/event"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/service"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/web"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/ecodeclub/qcmbank/internal/reward"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	queModule *question.Module,
	rewardModule *reward.Module,
	materialModule *material.Module,
	aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitExplanationDAO,
		initContributionConfig,
		initVoteConfig,
		initGenerationConfig,
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
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initContributionConfig() service.ContributionConfig {
	cfg := service.ContributionConfig{
		MaxSlots: 3,
	}
	// 没配置就用默认值
	_ = econf.UnmarshalKey("explanation.contribution", &cfg)
	return cfg
}

func initVoteConfig() service.VoteConfig {
	cfg := service.VoteConfig{
		RequiredLevel:  20,
		ApprovedWeight: 20,
	}
	_ = econf.UnmarshalKey("explanation.vote", &cfg)
	return cfg
}

func initGenerationConfig() service.GenerationConfig {
	cfg := service.GenerationConfig{
		Timeout:      30 * time.Second,
		BatchTimeout: 30 * time.Minute,
		Delay:        time.Second,
	}
	_ = econf.UnmarshalKey("explanation.generation", &cfg)
	return cfg
}

var daoOnce = sync.Once{}

func InitExplanationDAO(db *egorm.Component) dao.ExplanationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMExplanationDAO(db)
}
