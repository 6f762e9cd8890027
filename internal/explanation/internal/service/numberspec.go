package service

import (
	"sort"
	"strconv"
	"strings"
)

// parseNumberSpec 把 "1-5,7,10-15" 解析成去重升序的题号列表
// 非法的片段直接丢弃，不报错
func parseNumberSpec(spec string) []int {
	seen := make(map[int]struct{})
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(token, "-"); ok {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || start > end {
				continue
			}
			for n := start; n <= end; n++ {
				if n > 0 {
					seen[n] = struct{}{}
				}
			}
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil || n <= 0 {
			continue
		}
		seen[n] = struct{}{}
	}
	res := make([]int, 0, len(seen))
	for n := range seen {
		res = append(res, n)
	}
	sort.Ints(res)
	return res
}
