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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcmbank/internal/question/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 题库管理端
type AdminHandler struct {
	svc     service.Service
	examSvc service.ExamService
}

func NewAdminHandler(svc service.Service, examSvc service.ExamService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		examSvc: examSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/question/save", ginx.B[SaveQuestionReq](h.Save))
	server.POST("/question/detail", ginx.B[Qid](h.Detail))
	server.POST("/question/delete", ginx.B[Qid](h.Delete))
	server.POST("/exam/save", ginx.B[SaveExamReq](h.SaveExam))
	server.POST("/exam/detail", ginx.B[Eid](h.ExamDetail))
	server.POST("/exam/list", ginx.B[Page](h.ExamList))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveQuestionReq) (ginx.Result, error) {
	que := req.Question.toDomain()
	id, err := h.svc.Save(ctx, &que)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Qid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newQuestion(detail),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req Qid) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Qid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) SaveExam(ctx *ginx.Context, req SaveExamReq) (ginx.Result, error) {
	id, err := h.examSvc.Create(ctx, req.Exam.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) ExamDetail(ctx *ginx.Context, req Eid) (ginx.Result, error) {
	exam, err := h.examSvc.Detail(ctx, req.Eid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newExam(exam),
	}, nil
}

func (h *AdminHandler) ExamList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	exams, total, err := h.examSvc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	res := ExamList{Total: total}
	for _, e := range exams {
		res.Exams = append(res.Exams, newExam(e))
	}
	return ginx.Result{
		Data: res,
	}, nil
}
