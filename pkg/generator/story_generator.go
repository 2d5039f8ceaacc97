package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/parser"
	"github.com/shouni/go-storybook-kit/pkg/prompts"
)

// DefaultMaxAttempts は物語生成の既定の試行回数上限です。
const DefaultMaxAttempts = 3

// StoryGenerator は、プロンプト構築・AI生成・検証・分解を1回の試行として束ね、
// 有効な物語が得られるまで上限回数の範囲で順に再試行します。
type StoryGenerator struct {
	promptBuilder  *prompts.StoryPromptBuilder
	textGen        TextGenerator
	maxAttempts    int
	attemptTimeout time.Duration // 0 なら試行ごとの締め切りを設けない
}

// NewStoryGenerator は StoryGenerator を生成します。
// maxAttempts が正でない場合は DefaultMaxAttempts が使われます。
func NewStoryGenerator(pb *prompts.StoryPromptBuilder, textGen TextGenerator, maxAttempts int, attemptTimeout time.Duration) *StoryGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &StoryGenerator{
		promptBuilder:  pb,
		textGen:        textGen,
		maxAttempts:    maxAttempts,
		attemptTimeout: attemptTimeout,
	}
}

// Generate は道徳テーマと登場人物から子ども向けの物語を生成します。
//
// 失敗した試行（AI側の障害も検証不合格も）は記録して次の試行へ進みます。
// 上限回数まで有効な物語が得られなければ、最後の失敗原因を添えて
// domain.ErrGenerationExhausted を返します。親コンテキストが打ち切られた
// 場合は以降の試行を行いません。
func (g *StoryGenerator) Generate(ctx context.Context, req domain.StoryRequest) (domain.Story, error) {
	prompt, err := g.promptBuilder.Build(req)
	if err != nil {
		return domain.Story{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		story, err := g.attempt(ctx, prompt)
		if err == nil {
			slog.Info("有効な物語が得られたのだ", "attempt", attempt, "title", story.Title, "scenes", len(story.Scenes))
			return story, nil
		}

		lastErr = err
		slog.Warn("物語の試行に失敗したのだ", "attempt", attempt, "max_attempts", g.maxAttempts, "error", err)

		if ctx.Err() != nil {
			break
		}
	}

	return domain.Story{}, fmt.Errorf("%w: %d回の試行で有効な物語が得られませんでした: %v", domain.ErrGenerationExhausted, g.maxAttempts, lastErr)
}

// attempt は生成と検証を1回だけ実行します。
func (g *StoryGenerator) attempt(ctx context.Context, prompt string) (domain.Story, error) {
	if g.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.attemptTimeout)
		defer cancel()
	}

	raw, err := g.textGen.GenerateText(ctx, prompt)
	if err != nil {
		return domain.Story{}, fmt.Errorf("物語の生成に失敗しました: %w", err)
	}

	if err := parser.Validate(raw); err != nil {
		return domain.Story{}, err
	}

	return parser.Parse(raw), nil
}
