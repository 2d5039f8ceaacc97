package generator

import (
	"context"
	"fmt"

	"github.com/shouni/go-gemini-client/gemini"
)

// NewGeminiTextGenerator は gemini クライアントを TextGenerator に適合させます。
func NewGeminiTextGenerator(client gemini.GenerativeModel, model string) TextGenerator {
	return &geminiTextGenerator{client: client, model: model}
}

type geminiTextGenerator struct {
	client gemini.GenerativeModel
	model  string
}

func (g *geminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, prompt, g.model)
	if err != nil {
		return "", fmt.Errorf("物語テキストの生成に失敗したのだ: %w", err)
	}
	return resp.Text, nil
}
