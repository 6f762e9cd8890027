package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher 拉取外部存储上的文件内容
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() Fetcher {
	return &httpFetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("下载文件失败，状态码 %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
