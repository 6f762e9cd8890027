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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/pkg/mqx"
	"github.com/ecodeclub/qcmbank/internal/reward"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/event"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/web"
	"github.com/ecodeclub/qcmbank/internal/test"
	testioc "github.com/ecodeclub/qcmbank/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const uid = 123

type ModuleTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	q        mq.MQ
	module   *reward.Module
	producer mqx.Producer[event.ExplanationApprovedEvent]
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	module, err := reward.InitModule(s.db, s.q)
	require.NoError(s.T(), err)
	s.module = module
	producer, err := mqx.NewGeneralProducer[event.ExplanationApprovedEvent](s.q, event.ExplanationApprovedEvents)
	require.NoError(s.T(), err)
	s.producer = producer

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `point_logs`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `user_stats`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	s.T().Cleanup(cancel)
	return c
}

func (s *ModuleTestSuite) TestCreditApproval() {
	t := s.T()
	svc := s.module.Svc

	err := svc.CreditApproval(s.ctx(), 456, 1)
	require.NoError(t, err)
	stats, err := svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)
	assert.Equal(t, int64(0), stats.OverallLevel)

	// 同一道题只发一次
	err = svc.CreditApproval(s.ctx(), 456, 1)
	assert.ErrorIs(t, err, reward.ErrDuplicatedReward)
	stats, err = svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)

	// 攒满 200 分升到 2 级
	for qid := int64(2); qid <= 5; qid++ {
		require.NoError(t, svc.CreditApproval(s.ctx(), 456, qid))
	}
	stats, err = svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.BluePoints)
	assert.Equal(t, int64(200), stats.TotalPoints)
	assert.Equal(t, int64(2), stats.OverallLevel)
}

func (s *ModuleTestSuite) TestCreditApprovalConcurrent() {
	t := s.T()
	svc := s.module.Svc

	// 并发给同一个人发不同题目的奖励，一笔都不能少
	const n = 10
	require.NoError(t, svc.CreditApproval(s.ctx(), 456, 1))
	var eg errgroup.Group
	for qid := int64(2); qid <= n; qid++ {
		eg.Go(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return svc.CreditApproval(ctx, 456, qid)
		})
	}
	require.NoError(t, eg.Wait())

	stats, err := svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.BluePoints)
	assert.Equal(t, int64(n*40), stats.TotalPoints)
	assert.Equal(t, int64(n*40/100), stats.OverallLevel)
}

func (s *ModuleTestSuite) TestGetStatsZeroValue() {
	t := s.T()
	stats, err := s.module.Svc.GetStats(s.ctx(), 999)
	require.NoError(t, err)
	assert.Equal(t, int64(999), stats.Uid)
	assert.Equal(t, int64(0), stats.BluePoints)
	assert.Equal(t, int64(0), stats.TotalPoints)
}

func (s *ModuleTestSuite) TestConsume() {
	t := s.T()
	evt := event.ExplanationApprovedEvent{Uid: 456, Qid: 7, Eid: 11}
	err := s.producer.Produce(s.ctx(), evt)
	require.NoError(t, err)
	err = s.module.C.Consume(s.ctx())
	require.NoError(t, err)

	stats, err := s.module.Svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)

	// 消息重投不会重复发奖
	err = s.producer.Produce(s.ctx(), evt)
	require.NoError(t, err)
	err = s.module.C.Consume(s.ctx())
	require.NoError(t, err)
	stats, err = s.module.Svc.GetStats(s.ctx(), 456)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)
	var cnt int64
	err = s.db.WithContext(s.ctx()).Table("point_logs").
		Where("uid = ?", 456).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *ModuleTestSuite) TestStatsHandler() {
	t := s.T()
	require.NoError(t, s.module.Svc.CreditApproval(s.ctx(), uid, 1))
	require.NoError(t, s.module.Svc.CreditApproval(s.ctx(), uid, 2))

	req, err := http.NewRequest(http.MethodPost,
		"/reward/stats", iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.UserStats]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, web.UserStats{
		BluePoints:   2,
		TotalPoints:  80,
		OverallLevel: 0,
	}, got)
}

func (s *ModuleTestSuite) TestLogsHandler() {
	t := s.T()
	require.NoError(t, s.module.Svc.CreditApproval(s.ctx(), uid, 1))
	require.NoError(t, s.module.Svc.CreditApproval(s.ctx(), uid, 2))
	// 别人的流水不会混进来
	require.NoError(t, s.module.Svc.CreditApproval(s.ctx(), 456, 3))

	req, err := http.NewRequest(http.MethodPost,
		"/reward/logs", iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.PointLog]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	require.Len(t, got, 2)
	for _, log := range got {
		assert.Equal(t, "blue", log.Type)
		assert.Equal(t, int64(40), log.Amount)
		assert.Equal(t, "解析审核通过", log.Desc)
		assert.True(t, log.Ctime > 0)
	}
}

func TestRewardModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
