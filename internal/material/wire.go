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

package material

import (
	"sync"

	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/material/internal/job"
	"github.com/ecodeclub/qcmbank/internal/material/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/material/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service/extractor"
	"github.com/ecodeclub/qcmbank/internal/material/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewModuleContextFileRepository,
		service.NewHTTPFetcher,
		extractor.New,
		service.NewService,
		initKnowledgeBaseSyncService,
		job.NewKnowledgeBaseSyncJobStarter,
		web.NewAdminHandler,
		wire.FieldsOf(new(*ai.Module), "KnowledgeBaseSvc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var initOnce sync.Once

func initDAO(db *gorm.DB) dao.ModuleContextFileDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMModuleContextFileDAO(db)
}

func initKnowledgeBaseSyncService(repo repository.ModuleContextFileRepository,
	fetcher service.Fetcher,
	ext extractor.Extractor,
	kb ai.KnowledgeBaseService) service.KnowledgeBaseSyncService {
	type Config struct {
		KnowledgeBaseId string `yaml:"knowledgeBaseId"`
	}
	var cfg Config
	err := econf.UnmarshalKey("material", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewKnowledgeBaseSyncService(repo, fetcher, ext, kb, cfg.KnowledgeBaseId)
}
