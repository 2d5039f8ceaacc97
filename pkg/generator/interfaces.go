package generator

import (
	"context"

	"github.com/shouni/go-storybook-kit/pkg/monster"
)

// TextGenerator は、プロンプトからテキストを生成するAIクライアントの契約です。
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator は、画像生成プロセスを実行するクライアントの契約です。
// monster.Client がそのまま満たします。
type ImageGenerator interface {
	Generate(ctx context.Context, model string, input monster.Input) (*monster.Result, error)
}
