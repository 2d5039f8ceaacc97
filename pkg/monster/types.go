package monster

import (
	"fmt"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

// プロセスのステータス値です。API の status フィールドと対応します。
const (
	StatusInQueue    = "IN_QUEUE"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

// Input は txt2img 系モデルへ渡す生成パラメータです。
// フィールド名は API のリクエストボディのキーと対応します。
type Input struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negprompt"`
	Samples        int     `json:"samples"`
	Steps          int     `json:"steps"`
	AspectRatio    string  `json:"aspect_ratio"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Seed           int     `json:"seed"`
}

// Result は完了したプロセスの成果物です。Output には生成物のURLが並びます。
type Result struct {
	Status string   `json:"status"`
	Output []string `json:"output"`
}

// First は最初の生成物URLを返します。
// 成果物が1件も無い場合は domain.ErrEmptyGenerationResult を返します。
func (r *Result) First() (string, error) {
	if len(r.Output) == 0 {
		return "", fmt.Errorf("%w: 成果物のURLが空です", domain.ErrEmptyGenerationResult)
	}
	return r.Output[0], nil
}

// generateResponse は生成リクエスト受理時のレスポンスです。
type generateResponse struct {
	ProcessID string `json:"process_id"`
}

// statusResponse はプロセス照会のレスポンスです。
type statusResponse struct {
	Status string `json:"status"`
	Result Result `json:"result"`
}
