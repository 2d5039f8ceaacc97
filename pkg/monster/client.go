package monster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultBaseURL は Monster API のエンドポイントです。
const DefaultBaseURL = "https://api.monsterapi.ai/v1"

const (
	defaultPollInterval = 5 * time.Second
	defaultCacheTTL     = 30 * time.Minute
)

// Doer は HTTP リクエストを実行する契約です。httpkit.New が返すクライアントを
// そのまま渡せますし、テストでは偽物に差し替えられます。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config は Client の生成パラメータです。ゼロ値のフィールドには既定値が入ります。
type Config struct {
	APIKey       string
	BaseURL      string
	PollInterval time.Duration
	CacheTTL     time.Duration
}

// Client は Monster API の非同期生成プロトコルを扱うクライアントです。
// 生成リクエストを投げ、プロセスの完了までポーリングし、成果物を返します。
// シード値固定の呼び出しは決定的なので、成功結果はプロンプト単位でキャッシュします。
type Client struct {
	httpClient   Doer
	apiKey       string
	baseURL      string
	pollInterval time.Duration
	results      *cache.Cache
}

// New は新しい Client を生成します。
func New(cfg Config, httpClient Doer) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	return &Client{
		httpClient:   httpClient,
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		pollInterval: cfg.PollInterval,
		results:      cache.New(cfg.CacheTTL, cfg.CacheTTL),
	}
}

// Generate は指定モデルで生成を依頼し、完了までポーリングして成果物を返します。
// プロセスが FAILED になった場合、またはコンテキストが打ち切られた場合はエラーです。
func (c *Client) Generate(ctx context.Context, model string, input Input) (*Result, error) {
	cacheKey := fmt.Sprintf("%s|%d|%s", model, input.Seed, input.Prompt)
	if cached, ok := c.results.Get(cacheKey); ok {
		slog.Debug("キャッシュ済みの生成結果を再利用するのだ", "model", model)
		return cached.(*Result), nil
	}

	processID, err := c.submit(ctx, model, input)
	if err != nil {
		return nil, err
	}
	slog.Info("生成プロセスを受理されたのだ", "model", model, "process_id", processID)

	result, err := c.await(ctx, processID)
	if err != nil {
		return nil, err
	}

	c.results.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

// submit は生成リクエストを送信し、プロセスIDを受け取ります。
func (c *Client) submit(ctx context.Context, model string, input Input) (string, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("生成パラメータのエンコードに失敗しました: %w", err)
	}

	url := fmt.Sprintf("%s/generate/%s", c.baseURL, model)
	var resp generateResponse
	if err := c.doJSON(ctx, http.MethodPost, url, bytes.NewReader(body), &resp); err != nil {
		return "", fmt.Errorf("生成リクエストの送信に失敗しました: %w", err)
	}
	if resp.ProcessID == "" {
		return "", fmt.Errorf("生成リクエストは受理されましたが process_id が空です")
	}

	return resp.ProcessID, nil
}

// await はプロセスが終端ステータスに達するまで照会を繰り返します。
func (c *Client) await(ctx context.Context, processID string) (*Result, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	url := fmt.Sprintf("%s/status/%s", c.baseURL, processID)
	for {
		var resp statusResponse
		if err := c.doJSON(ctx, http.MethodGet, url, nil, &resp); err != nil {
			return nil, fmt.Errorf("プロセス %s の照会に失敗しました: %w", processID, err)
		}

		switch resp.Status {
		case StatusCompleted:
			result := resp.Result
			result.Status = resp.Status
			return &result, nil
		case StatusFailed:
			return nil, fmt.Errorf("プロセス %s は失敗ステータスで終了しました", processID)
		default:
			slog.Debug("プロセスの完了を待っているのだ", "process_id", processID, "status", resp.Status)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("プロセス %s の完了待ちが打ち切られました: %w", processID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// doJSON は認証ヘッダ付きでリクエストを実行し、JSONレスポンスを out へ展開します。
func (c *Client) doJSON(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("リクエストの構築に失敗しました: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("APIが異常ステータスを返しました: %d %s", resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("レスポンスのデコードに失敗しました: %w", err)
	}
	return nil
}
