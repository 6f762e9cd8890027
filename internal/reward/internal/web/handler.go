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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/errs"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/service"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/reward/stats", ginx.S(h.Stats))
	server.POST("/reward/logs", ginx.BS[Page](h.Logs))
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stats, err := h.svc.GetStats(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserStats{
			BluePoints:   stats.BluePoints,
			TotalPoints:  stats.TotalPoints,
			OverallLevel: stats.OverallLevel,
		},
	}, nil
}

func (h *Handler) Logs(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	logs, err := h.svc.PointLogs(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(logs, func(idx int, src domain.PointLog) PointLog {
			return PointLog{
				Qid:    src.Qid,
				Type:   src.Type,
				Amount: src.Amount,
				Desc:   src.Desc,
				Ctime:  src.Ctime,
			}
		}),
	}, nil
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type UserStats struct {
	BluePoints   int64 `json:"bluePoints"`
	TotalPoints  int64 `json:"totalPoints"`
	OverallLevel int64 `json:"overallLevel"`
}

type PointLog struct {
	Qid    int64  `json:"qid"`
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
	Desc   string `json:"desc"`
	Ctime  int64  `json:"ctime"`
}
