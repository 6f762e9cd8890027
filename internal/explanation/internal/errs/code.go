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

package errs

var (
	SystemError              = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidInputError        = ErrorCode{Code: 518002, Msg: "参数非法"}
	CapacityExceededError    = ErrorCode{Code: 518003, Msg: "该题目的解析位已满"}
	DuplicateContribution    = ErrorCode{Code: 518004, Msg: "你已经给这道题提交过解析了"}
	InsufficientLevelError   = ErrorCode{Code: 518005, Msg: "等级不够，不能投票"}
	RedundantVoteError       = ErrorCode{Code: 518006, Msg: "已经投过同方向的票了"}
	AlreadyGeneratedError    = ErrorCode{Code: 518007, Msg: "该题目已有 AI 解析"}
	EmptyGenerationError     = ErrorCode{Code: 518008, Msg: "AI 返回了空解析"}
	ProviderError            = ErrorCode{Code: 518009, Msg: "AI 平台调用失败"}
	ExplanationNotFoundError = ErrorCode{Code: 518010, Msg: "解析不存在"}
	NotAuthorError           = ErrorCode{Code: 518011, Msg: "只能修改自己的解析"}
	StatusSettledError       = ErrorCode{Code: 518012, Msg: "解析已经审核过，不能再改结论"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
