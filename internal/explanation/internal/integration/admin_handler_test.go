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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/event"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/integration/startup"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository/dao"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/web"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/ecodeclub/qcmbank/internal/reward"
	"github.com/ecodeclub/qcmbank/internal/test"
	testioc "github.com/ecodeclub/qcmbank/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// llmStub 替代真实的大模型平台
type llmStub struct {
	mu      sync.Mutex
	invoke  func(req ai.LLMRequest) (ai.LLMResponse, error)
	pingErr error
	reqs    []ai.LLMRequest
}

func (l *llmStub) Invoke(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, req)
	if l.invoke == nil {
		return ai.LLMResponse{}, errors.New("没有配置返回")
	}
	return l.invoke(req)
}

func (l *llmStub) Ping(ctx context.Context) error {
	return l.pingErr
}

func (l *llmStub) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.invoke = nil
	l.pingErr = nil
	l.reqs = nil
}

func (l *llmStub) requests() []ai.LLMRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reqs
}

type AdminHandlerTestSuite struct {
	suite.Suite
	server       *egin.Component
	db           *egorm.Component
	dao          dao.ExplanationDAO
	q            mq.MQ
	queModule    *question.Module
	rewardModule *reward.Module
	llm          *llmStub
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	s.llm = &llmStub{}
	queModule, err := question.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	rewardModule, err := reward.InitModule(s.db, s.q)
	require.NoError(s.T(), err)
	aiModule := &ai.Module{Svc: s.llm}
	materialModule, err := material.InitModule(s.db, aiModule)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(s.q, queModule, rewardModule, materialModule, aiModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				"creator": "true",
			},
		}))
	})
	module.AdminHdl.PrivateRoutes(server.Engine)

	s.server = server
	s.dao = dao.NewGORMExplanationDAO(s.db)
	s.queModule = queModule
	s.rewardModule = rewardModule
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.llm.reset()
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"explanations", "explanation_votes",
		"point_logs", "user_stats",
		"questions", "exams",
	} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

// seedExam 录入一份 n 道题的试卷，返回试卷 id 和按题号排的题目 id
func (s *AdminHandlerTestSuite) seedExam(n int) (int64, []int64) {
	t := s.T()
	examId, err := s.queModule.ExamSvc.Create(ctx(t), question.Exam{
		Title: "有机化学期中卷",
		Biz:   "course",
		BizId: 1,
	})
	require.NoError(t, err)
	qids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		qid, err := s.queModule.Svc.Save(ctx(t), &question.Question{
			ExamId:   examId,
			Position: i,
			Content:  fmt.Sprintf("Quelle est la bonne réponse %d ?", i),
			Options: []question.Option{
				{Label: "A", Content: fmt.Sprintf("选项 A%d", i), Correct: true},
				{Label: "B", Content: fmt.Sprintf("选项 B%d", i)},
			},
		})
		require.NoError(t, err)
		qids = append(qids, qid)
	}
	return examId, qids
}

func (s *AdminHandlerTestSuite) post(path string, req any, recorder http.ResponseWriter) {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, httpReq)
}

func (s *AdminHandlerTestSuite) TestList() {
	t := s.T()
	for i := int64(1); i <= 3; i++ {
		e := dao.Explanation{
			Id: i, Qid: i, Slot: 1, Uid: 234,
			Content: fmt.Sprintf("解析 %d", i),
			Status:  1, Ctime: 123, Utime: 123,
		}
		require.NoError(t, s.db.Create(&e).Error)
	}

	recorder := test.NewJSONResponseRecorder[web.ExplanationList]()
	s.post("/explanation/list", web.Page{Offset: 0, Limit: 2}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, int64(3), resp.Data.Total)
	assert.Len(t, resp.Data.Explanations, 2)
}

func (s *AdminHandlerTestSuite) TestUpdateStatus() {
	t := s.T()
	const author = int64(456)
	e := dao.Explanation{
		Id: 71, Qid: 77, Slot: 1, Uid: author,
		Content: "待审的解析", Status: 1, Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&e).Error)

	// 第一次 待审 -> 通过，发奖励事件
	recorder := test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 71, Status: 2}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)
	got, err := s.dao.GetByID(ctx(t), 71)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), got.Status)

	err = s.rewardModule.C.Consume(ctx(t))
	require.NoError(t, err)
	stats, err := s.rewardModule.Svc.GetStats(ctx(t), author)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)
	assert.Equal(t, int64(0), stats.OverallLevel)

	// 再通过一次不会再发
	recorder = test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 71, Status: 2}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)

	// 消息重投也只记一次
	producer, err := event.NewExplanationApprovedEventProducer(s.q)
	require.NoError(t, err)
	err = producer.Produce(ctx(t), event.ExplanationApprovedEvent{
		Uid: author, Qid: 77, Eid: 71,
	})
	require.NoError(t, err)
	err = s.rewardModule.C.Consume(ctx(t))
	require.NoError(t, err)

	stats, err = s.rewardModule.Svc.GetStats(ctx(t), author)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BluePoints)
	assert.Equal(t, int64(40), stats.TotalPoints)
	var cnt int64
	err = s.db.Table("point_logs").Where("uid = ?", author).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func (s *AdminHandlerTestSuite) TestUpdateStatusSettled() {
	t := s.T()
	approved := dao.Explanation{
		Id: 74, Qid: 80, Slot: 1, Uid: 456,
		Content: "已通过的解析", Status: 2, Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&approved).Error)
	rejected := dao.Explanation{
		Id: 75, Qid: 81, Slot: 1, Uid: 457,
		Content: "已拒绝的解析", Status: 3, Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&rejected).Error)

	// 通过了不能翻成拒绝
	recorder := test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 74, Status: 3}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518012, recorder.MustScan().Code)
	got, err := s.dao.GetByID(ctx(t), 74)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), got.Status)

	// 拒绝了也不能翻成通过，不然会冒出一条没发过奖励的过审解析
	recorder = test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 75, Status: 2}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518012, recorder.MustScan().Code)
	got, err = s.dao.GetByID(ctx(t), 75)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), got.Status)

	// 同样的结论重新下一次算幂等
	recorder = test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 75, Status: 3}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)
}

func (s *AdminHandlerTestSuite) TestUpdateStatusInvalid() {
	t := s.T()
	e := dao.Explanation{
		Id: 72, Qid: 78, Slot: 1, Uid: 456,
		Content: "待审的解析", Status: 1, Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&e).Error)

	// 只能改成通过或者拒绝
	recorder := test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 72, Status: 1}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518002, recorder.MustScan().Code)

	recorder = test.NewJSONResponseRecorder[any]()
	s.post("/explanation/status", web.UpdateStatusReq{Eid: 999, Status: 2}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518010, recorder.MustScan().Code)
}

func (s *AdminHandlerTestSuite) TestDelete() {
	t := s.T()
	e := dao.Explanation{
		Id: 73, Qid: 79, Slot: 1, Uid: 456,
		Content: "要删的解析", Status: 2, Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&e).Error)

	recorder := test.NewJSONResponseRecorder[any]()
	s.post("/explanation/delete", web.Eid{Eid: 73}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)
	_, err := s.dao.GetByID(ctx(t), 73)
	assert.Error(t, err)
}

func (s *AdminHandlerTestSuite) TestBatchCreate() {
	t := s.T()
	examId, qids := s.seedExam(5)

	recorder := test.NewJSONResponseRecorder[web.BatchCreateResp]()
	s.post("/explanation/batch-create", web.AdminBatchCreateReq{
		ExamId:     examId,
		NumberSpec: "1-3,5,9",
		Content:    "统一种入的官方解析",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 4, resp.Data.Created)
	assert.Empty(t, resp.Data.Errors)
	assert.Equal(t, []int{9}, resp.Data.NotFound)

	// 直接是通过状态，而且不触发奖励
	var rows []dao.Explanation
	err := s.db.Order("qid ASC").Find(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []int64{qids[0], qids[1], qids[2], qids[4]},
		[]int64{rows[0].Qid, rows[1].Qid, rows[2].Qid, rows[3].Qid})
	for _, row := range rows {
		assert.Equal(t, uint8(2), row.Status)
		assert.Equal(t, uint8(1), row.Slot)
		assert.Equal(t, uint8(0), row.AiGenerated)
	}
	var cnt int64
	err = s.db.Table("point_logs").Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	// 同一批人再种一遍，全部撞上一人一题的限制
	recorder = test.NewJSONResponseRecorder[web.BatchCreateResp]()
	s.post("/explanation/batch-create", web.AdminBatchCreateReq{
		ExamId:     examId,
		NumberSpec: "1-3,5,9",
		Content:    "统一种入的官方解析",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan()
	assert.Equal(t, 0, resp.Data.Created)
	assert.Len(t, resp.Data.Errors, 4)
	assert.Contains(t, resp.Data.Errors[0], "题目 1")
	assert.Equal(t, []int{9}, resp.Data.NotFound)
}

func (s *AdminHandlerTestSuite) TestGenerate() {
	t := s.T()
	_, qids := s.seedExam(2)

	s.llm.invoke = func(req ai.LLMRequest) (ai.LLMResponse, error) {
		return ai.LLMResponse{
			Answer:   "La bonne réponse est A parce que...",
			Platform: "zhipu",
		}, nil
	}
	recorder := test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{Qid: qids[0]}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 0, resp.Data.Slot)
	assert.True(t, resp.Data.AiGenerated)
	assert.Equal(t, "zhipu", resp.Data.Provider)
	assert.Equal(t, uint8(2), resp.Data.Status)
	// 没指定语言，默认法语模板
	assert.Equal(t, "fr", resp.Data.Language)
	reqs := s.llm.requests()
	require.Len(t, reqs, 1)
	prompt := reqs[0].Input[0]
	assert.Contains(t, prompt, "Quelle est la bonne réponse 1 ?")
	assert.Contains(t, prompt, "Réponse(s) correcte(s) : A")

	// 幂等，再生成返回已有记录
	generated := resp.Data.Id
	recorder = test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{Qid: qids[0]}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan()
	assert.Equal(t, 518007, resp.Code)
	assert.Equal(t, generated, resp.Data.Id)
	// 没有再打平台
	assert.Len(t, s.llm.requests(), 1)

	// 空回答不落库
	s.llm.invoke = func(req ai.LLMRequest) (ai.LLMResponse, error) {
		return ai.LLMResponse{Answer: "   ", Platform: "zhipu"}, nil
	}
	recorder = test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{Qid: qids[1]}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518008, recorder.MustScan().Code)

	// 平台报错带上原因
	s.llm.invoke = func(req ai.LLMRequest) (ai.LLMResponse, error) {
		return ai.LLMResponse{}, errors.New("rate limited")
	}
	recorder = test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{Qid: qids[1]}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan()
	assert.Equal(t, 518009, resp.Code)
	assert.Contains(t, resp.Msg, "rate limited")
	_, err := s.dao.GetAIByQid(ctx(t), qids[1])
	assert.Error(t, err)

	// 题目不存在
	recorder = test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{Qid: 9999}, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 518001, recorder.MustScan().Code)
}

func (s *AdminHandlerTestSuite) TestGenerateEnglishAndCustomPrompt() {
	t := s.T()
	_, qids := s.seedExam(1)
	s.llm.invoke = func(req ai.LLMRequest) (ai.LLMResponse, error) {
		return ai.LLMResponse{Answer: "Because A is right.", Platform: "zhipu"}, nil
	}

	recorder := test.NewJSONResponseRecorder[web.Explanation]()
	s.post("/explanation/ai/generate", web.GenerateReq{
		Qid:          qids[0],
		Language:     "en",
		CustomPrompt: "Explain {{question}} briefly.",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "en", resp.Data.Language)
	reqs := s.llm.requests()
	require.Len(t, reqs, 1)
	// 自定义模板整个替换内置模板
	assert.True(t, strings.HasPrefix(reqs[0].Input[0], "Explain Quelle est la bonne réponse 1 ?"))
}

func (s *AdminHandlerTestSuite) TestGenerateBatch() {
	t := s.T()
	examId, qids := s.seedExam(3)
	// 第 2 题已经有 AI 解析了
	existing := dao.Explanation{
		Qid: qids[1], Slot: 0, Uid: 1, AiGenerated: 1,
		Content: "已有的 AI 解析", Status: 2,
		Provider: "zhipu", Language: "fr",
		Ctime: 123, Utime: 123,
	}
	require.NoError(t, s.db.Create(&existing).Error)
	s.llm.invoke = func(req ai.LLMRequest) (ai.LLMResponse, error) {
		return ai.LLMResponse{Answer: "Parce que A.", Platform: "zhipu"}, nil
	}

	recorder := test.NewJSONResponseRecorder[web.GenerateBatchResp]()
	s.post("/explanation/ai/generate-batch", web.GenerateBatchReq{
		TargetKind: "exam",
		TargetId:   examId,
		NumberSpec: "1-3,5",
	}, recorder)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 2, resp.Data.Saved)
	assert.Equal(t, 1, resp.Data.Failed)
	assert.Len(t, resp.Data.Explanations, 2)
	require.Len(t, resp.Data.Errors, 1)
	assert.Contains(t, resp.Data.Errors[0], "题目 2")
	assert.Equal(t, []int{5}, resp.Data.NotFound)
	// 已有解析的不再打平台
	assert.Len(t, s.llm.requests(), 2)

	for _, qid := range []int64{qids[0], qids[2]} {
		got, err := s.dao.GetAIByQid(ctx(t), qid)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), got.Status)
		assert.Equal(t, "Parce que A.", got.Content)
	}
}

func (s *AdminHandlerTestSuite) TestPing() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.PingResp]()
	s.post("/explanation/ai/ping", nil, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.True(t, recorder.MustScan().Data.Reachable)

	s.llm.pingErr = errors.New("平台挂了")
	recorder = test.NewJSONResponseRecorder[web.PingResp]()
	s.post("/explanation/ai/ping", nil, recorder)
	require.Equal(t, 200, recorder.Code)
	assert.False(t, recorder.MustScan().Data.Reachable)
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
