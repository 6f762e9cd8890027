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

package domain

// AISlot AI 解析固定占 0 号位，人工解析从 1 号位开始
const AISlot = 0

type Status uint8

const (
	StatusUnknown  Status = 0
	StatusPending  Status = 1
	StatusApproved Status = 2
	StatusRejected Status = 3
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d Direction) String() string {
	return string(d)
}

type Explanation struct {
	Id  int64
	Qid int64
	// 作者，AI 解析记录的是发起生成的管理员
	Uid         int64
	Title       string
	Content     string
	Images      []string
	DocumentUrl string
	Status      Status
	// 0 表示 AI 位
	Slot        int
	AiGenerated bool
	// AI 解析才有：真正执行生成的平台
	Provider  string
	Language  Language
	Upvotes   int64
	Downvotes int64
	Ctime     int64
	Utime     int64
}

// Vote 一个用户对一条解析的投票
type Vote struct {
	Id        int64
	Eid       int64
	Uid       int64
	Direction Direction
	Weight    int64
	Utime     int64
}

// VoteResult 投票之后的聚合结果
type VoteResult struct {
	Upvotes   int64
	Downvotes int64
	// 本次投票实际使用的权重
	Weight int64
}
