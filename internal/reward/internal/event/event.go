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

package event

const ExplanationApprovedEvents = "explanation_approved_events"

// ExplanationApprovedEvent 解析首次审核通过
type ExplanationApprovedEvent struct {
	Uid int64 `json:"uid"`
	Qid int64 `json:"qid"`
	// 解析 id
	Eid int64 `json:"eid"`
}
