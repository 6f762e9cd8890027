package test

// Result 和 ginx.Result 的线上结构保持一致，测试里用泛型拿到具体的 Data 类型
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
