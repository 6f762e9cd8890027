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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberSpec(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		spec string
		want []int
	}{
		{
			name: "单个数字",
			spec: "7",
			want: []int{7},
		},
		{
			name: "区间",
			spec: "1-5",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "混合",
			spec: "1-3,7,10-12",
			want: []int{1, 2, 3, 7, 10, 11, 12},
		},
		{
			name: "去重排序",
			spec: "5,1-3,2,5",
			want: []int{1, 2, 3, 5},
		},
		{
			name: "带空格",
			spec: " 1 , 3 - 4 ",
			want: []int{1, 3, 4},
		},
		{
			name: "非法片段丢弃",
			spec: "1,abc,3-x,5",
			want: []int{1, 5},
		},
		{
			name: "倒序区间丢弃",
			spec: "5-1,7",
			want: []int{7},
		},
		{
			name: "零和负数丢弃",
			spec: "0,-3,2",
			want: []int{2},
		},
		{
			name: "空串",
			spec: "",
			want: []int{},
		},
		{
			name: "只有逗号",
			spec: ",,,",
			want: []int{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseNumberSpec(tc.spec))
		})
	}
}
