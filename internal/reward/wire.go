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

package reward

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/event"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/service"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitRewardDAO,
		initRewardConfig,
		repository.NewRepository,
		service.NewService,
		event.NewMQConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initRewardConfig() service.RewardConfig {
	cfg := service.RewardConfig{
		BluePointAmount: 40,
	}
	// 没配置就用默认值
	_ = econf.UnmarshalKey("reward", &cfg)
	return cfg
}

var daoOnce = sync.Once{}

func InitRewardDAO(db *egorm.Component) dao.RewardDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMRewardDAO(db)
}
