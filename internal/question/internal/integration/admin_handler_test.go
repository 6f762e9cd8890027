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
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/ecodeclub/qcmbank/internal/question/internal/web"
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

const uid = 123

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	module *question.Module
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := question.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	s.module = module

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
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `questions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `exams`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	s.T().Cleanup(cancel)
	return c
}

func (s *AdminHandlerTestSuite) createExam(title, biz string, bizId int64) int64 {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/exam/save", iox.NewJSONReader(web.SaveExamReq{
			Exam: web.Exam{Title: title, Biz: biz, BizId: bizId},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.True(t, resp.Data > 0)
	return resp.Data
}

func (s *AdminHandlerTestSuite) createQuestion(examId int64, position int) int64 {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/question/save", iox.NewJSONReader(web.SaveQuestionReq{
			Question: web.Question{
				ExamId:   examId,
				Position: position,
				Content:  fmt.Sprintf("Question %d de l'examen %d", position, examId),
				Options: []web.Option{
					{Label: "A", Content: "Bonne réponse", Correct: true},
					{Label: "B", Content: "Mauvaise réponse"},
					{Label: "C", Content: "Autre mauvaise réponse"},
				},
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.True(t, resp.Data > 0)
	return resp.Data
}

func (s *AdminHandlerTestSuite) TestQuestionSaveDetailDelete() {
	t := s.T()
	examId := s.createExam("物理力学卷", "course", 1)
	qid := s.createQuestion(examId, 1)

	req, err := http.NewRequest(http.MethodPost,
		"/question/detail", iox.NewJSONReader(web.Qid{Qid: qid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, qid, got.Id)
	assert.Equal(t, examId, got.ExamId)
	assert.Equal(t, 1, got.Position)
	require.Len(t, got.Options, 3)
	assert.True(t, got.Options[0].Correct)
	assert.False(t, got.Options[1].Correct)
	assert.True(t, got.Utime > 0)

	req, err = http.NewRequest(http.MethodPost,
		"/question/delete", iox.NewJSONReader(web.Qid{Qid: qid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	deleteRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(deleteRecorder, req)
	require.Equal(t, 200, deleteRecorder.Code)

	// 删完再查
	req, err = http.NewRequest(http.MethodPost,
		"/question/detail", iox.NewJSONReader(web.Qid{Qid: qid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Question]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 514001, recorder.MustScan().Code)
}

func (s *AdminHandlerTestSuite) TestExamDetail() {
	t := s.T()
	examId := s.createExam("化学有机卷", "course", 2)
	// 乱序录入，题号排序
	s.createQuestion(examId, 2)
	s.createQuestion(examId, 1)
	s.createQuestion(examId, 3)

	req, err := http.NewRequest(http.MethodPost,
		"/exam/detail", iox.NewJSONReader(web.Eid{Eid: examId}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Exam]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, "化学有机卷", got.Title)
	assert.Equal(t, "course", got.Biz)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, []int{1, 2, 3},
		[]int{got.Questions[0].Position, got.Questions[1].Position, got.Questions[2].Position})
}

func (s *AdminHandlerTestSuite) TestExamList() {
	t := s.T()
	for i := int64(1); i <= 3; i++ {
		s.createExam(fmt.Sprintf("试卷 %d", i), "qcmBank", i)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/exam/list", iox.NewJSONReader(web.Page{Offset: 0, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ExamList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	got := recorder.MustScan().Data
	assert.Equal(t, int64(3), got.Total)
	assert.Len(t, got.Exams, 2)
}

func (s *AdminHandlerTestSuite) TestTargetQuestions() {
	t := s.T()
	// 同一门课两份卷，另一门课一份卷
	exam1 := s.createExam("课程卷一", "course", 55)
	exam2 := s.createExam("课程卷二", "course", 55)
	other := s.createExam("别的课的卷", "course", 56)
	s.createQuestion(exam1, 1)
	s.createQuestion(exam1, 2)
	s.createQuestion(exam2, 1)
	s.createQuestion(other, 1)

	// 整卷
	qs, err := s.module.Svc.TargetQuestions(s.ctx(), question.Target{
		Kind: question.TargetExam, Id: exam1,
	})
	require.NoError(t, err)
	require.Len(t, qs, 2)

	// 按试卷 id 升序拼起来
	qs, err = s.module.Svc.TargetQuestions(s.ctx(), question.Target{
		Kind: question.TargetCourse, Id: 55,
	})
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.Equal(t, exam1, qs[0].ExamId)
	assert.Equal(t, exam1, qs[1].ExamId)
	assert.Equal(t, exam2, qs[2].ExamId)

	// 不认识的目标类型
	_, err = s.module.Svc.TargetQuestions(s.ctx(), question.Target{
		Kind: "galaxy", Id: 1,
	})
	assert.Error(t, err)
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
