//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/explanation"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/ecodeclub/qcmbank/internal/reward"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitSession,
		question.InitModule,
		reward.InitModule,
		ai.InitModule,
		material.InitModule,
		explanation.InitModule,
		initGinxServer,
		InitAdminServer,
		initJobs,
		initMQConsumers)
	return new(App), nil
}
