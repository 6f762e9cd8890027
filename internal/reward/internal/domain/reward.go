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

const (
	// BizExplanation 解析审核通过的奖励
	BizExplanation = "explanation"

	// PointTypeBlue 蓝色积分，对应一条审核通过的解析
	PointTypeBlue = "blue"
)

// PointLog 积分流水，只增不改
type PointLog struct {
	Id     int64
	Uid    int64
	Biz    string
	// 触发奖励的题目
	Qid    int64
	Type   string
	Amount int64
	Desc   string
	Ctime  int64
}

// UserStats 用户侧的聚合数据
// OverallLevel 是推导值，由总积分算出来
type UserStats struct {
	Id           int64
	Uid          int64
	BluePoints   int64
	TotalPoints  int64
	OverallLevel int64
}

// LevelOf 总积分推导等级
// 平台约定每 100 分一级
func LevelOf(totalPoints int64) int64 {
	return totalPoints / 100
}
