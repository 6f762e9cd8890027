//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/qcmbank/internal/ai/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		repository.NewLLMLogRepo,
		repository.NewCachedConfigRepository,
		repository.NewKnowledgeBaseRepo,

		InitLLMRecordDAO,
		dao.NewGORMConfigDAO,
		dao.NewKnowledgeBaseDAO,

		config.NewBuilder,
		log.NewHandler,
		record.NewHandler,

		InitHandlerFacade,
		InitCommonHandlers,
		InitPlatform,
		InitLLMService,
		InitZhipuKnowledgeBase,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMLogDAO(db)
}
