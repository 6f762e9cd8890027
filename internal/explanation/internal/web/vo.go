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
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/service"
	"github.com/ecodeclub/qcmbank/internal/question"
)

type Explanation struct {
	Id          int64    `json:"id,omitempty"`
	Qid         int64    `json:"qid,omitempty"`
	Uid         int64    `json:"uid,omitempty"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	DocumentUrl string   `json:"documentUrl,omitempty"`
	Status      uint8    `json:"status,omitempty"`
	Slot        int      `json:"slot"`
	AiGenerated bool     `json:"aiGenerated,omitempty"`
	Provider    string   `json:"provider,omitempty"`
	Language    string   `json:"language,omitempty"`
	Upvotes     int64    `json:"upvotes,omitempty"`
	Downvotes   int64    `json:"downvotes,omitempty"`
	// 当前用户投过的方向，没投过为空
	MyVote string `json:"myVote,omitempty"`
	Utime  int64  `json:"utime,omitempty"`
}

func newExplanation(e domain.Explanation) Explanation {
	return Explanation{
		Id:          e.Id,
		Qid:         e.Qid,
		Uid:         e.Uid,
		Title:       e.Title,
		Content:     e.Content,
		Images:      e.Images,
		DocumentUrl: e.DocumentUrl,
		Status:      e.Status.ToUint8(),
		Slot:        e.Slot,
		AiGenerated: e.AiGenerated,
		Provider:    e.Provider,
		Language:    string(e.Language),
		Upvotes:     e.Upvotes,
		Downvotes:   e.Downvotes,
		Utime:       e.Utime,
	}
}

type SubmitReq struct {
	Qid         int64    `json:"qid"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	DocumentUrl string   `json:"documentUrl,omitempty"`
}

func (r SubmitReq) toDomain(uid int64) domain.Explanation {
	return domain.Explanation{
		Qid:         r.Qid,
		Uid:         uid,
		Title:       r.Title,
		Content:     r.Content,
		Images:      r.Images,
		DocumentUrl: r.DocumentUrl,
	}
}

type SubmitResp struct {
	Explanation Explanation `json:"explanation"`
	// 该题还剩几个人工解析位
	RemainingSlots int `json:"remainingSlots"`
}

type UpdateReq struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	DocumentUrl string   `json:"documentUrl,omitempty"`
}

type Eid struct {
	Eid int64 `json:"eid"`
}

type Qid struct {
	Qid int64 `json:"qid"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type QuestionExplanations struct {
	Explanations []Explanation `json:"explanations,omitempty"`
}

type ExplanationList struct {
	Total        int64         `json:"total,omitempty"`
	Explanations []Explanation `json:"explanations,omitempty"`
}

type VoteReq struct {
	Eid       int64  `json:"eid"`
	Direction string `json:"direction"`
}

type VoteResp struct {
	Upvotes   int64 `json:"upvotes"`
	Downvotes int64 `json:"downvotes"`
	// 本次投票计入的权重
	Weight int64 `json:"weight"`
}

type UpdateStatusReq struct {
	Eid    int64 `json:"eid"`
	Status uint8 `json:"status"`
}

type AdminBatchCreateReq struct {
	ExamId      int64    `json:"examId"`
	NumberSpec  string   `json:"numberSpec"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	DocumentUrl string   `json:"documentUrl,omitempty"`
}

type BatchCreateResp struct {
	Created  int      `json:"created"`
	Errors   []string `json:"errors,omitempty"`
	NotFound []int    `json:"notFound,omitempty"`
}

type GenerateReq struct {
	Qid          int64  `json:"qid"`
	Language     string `json:"language,omitempty"`
	CustomPrompt string `json:"customPrompt,omitempty"`
	Context      string `json:"context,omitempty"`
	ModuleId     int64  `json:"moduleId,omitempty"`
}

func (r GenerateReq) toDomain(uid int64) service.GenerateReq {
	return service.GenerateReq{
		Qid:          r.Qid,
		Uid:          uid,
		Language:     domain.Language(r.Language),
		CustomPrompt: r.CustomPrompt,
		Context:      r.Context,
		ModuleId:     r.ModuleId,
	}
}

type GenerateBatchReq struct {
	TargetKind   string `json:"targetKind"`
	TargetId     int64  `json:"targetId"`
	NumberSpec   string `json:"numberSpec"`
	Language     string `json:"language,omitempty"`
	CustomPrompt string `json:"customPrompt,omitempty"`
	Context      string `json:"context,omitempty"`
	ModuleId     int64  `json:"moduleId,omitempty"`
}

func (r GenerateBatchReq) toDomain(uid int64) service.BatchReq {
	return service.BatchReq{
		Target: question.Target{
			Kind: question.TargetKind(r.TargetKind),
			Id:   r.TargetId,
		},
		Uid:          uid,
		NumberSpec:   r.NumberSpec,
		Language:     domain.Language(r.Language),
		CustomPrompt: r.CustomPrompt,
		Context:      r.Context,
		ModuleId:     r.ModuleId,
	}
}

type GenerateBatchResp struct {
	Saved        int           `json:"saved"`
	Failed       int           `json:"failed"`
	Explanations []Explanation `json:"explanations,omitempty"`
	Errors       []string      `json:"errors,omitempty"`
	NotFound     []int         `json:"notFound,omitempty"`
}

func newGenerateBatchResp(res service.BatchResult) GenerateBatchResp {
	return GenerateBatchResp{
		Saved:  res.Saved,
		Failed: res.Failed,
		Explanations: slice.Map(res.Explanations, func(idx int, src domain.Explanation) Explanation {
			return newExplanation(src)
		}),
		Errors:   res.Errors,
		NotFound: res.NotFound,
	}
}

type PingResp struct {
	Reachable bool `json:"reachable"`
}
