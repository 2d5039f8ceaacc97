package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/runner"
	"github.com/shouni/go-storybook-kit/pkg/generator"
	"github.com/shouni/go-storybook-kit/pkg/monster"
	"github.com/shouni/go-storybook-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-text-format/pkg/builder"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
	"google.golang.org/genai"
)

// BuildStoryRunner は物語生成を担当する Runner を構築します。
func BuildStoryRunner(ctx context.Context, appCtx *AppContext) (runner.StoryRunner, error) {
	promptBuilder, err := prompts.NewStoryPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗したのだ: %w", err)
	}

	textGen := generator.NewGeminiTextGenerator(appCtx.aiClient, appCtx.Config.GeminiModel)
	storyGen := generator.NewStoryGenerator(
		promptBuilder,
		textGen,
		appCtx.Options.MaxAttempts,
		appCtx.Options.HTTPTimeout,
	)

	return runner.NewDefaultStoryRunner(storyGen, appCtx.Writer), nil
}

// BuildIllustrationRunner は挿絵生成を担当する Runner を構築します。
func BuildIllustrationRunner(ctx context.Context, appCtx *AppContext) (runner.IllustrationRunner, error) {
	illustrator := generator.NewSceneIllustrator(
		appCtx.imageClient,
		appCtx.Config.MonsterModel,
		appCtx.Options.RateInterval,
	)
	return runner.NewDefaultIllustrationRunner(illustrator), nil
}

// BuildPublisherRunner はコンテンツ保存と変換を行う Runner を構築します。
func BuildPublisherRunner(ctx context.Context, appCtx *AppContext) (runner.PublisherRunner, error) {
	opts := appCtx.Options

	// HTML出力が有効なときだけ変換ランナーを組み立てる
	var md2htmlRunner md2htmlrunner.Runner
	if opts.EnableHTML {
		htmlCfg := builder.BuilderConfig{
			EnableHardWraps: true,
			Mode:            "storybook",
		}
		appBuilder, err := builder.NewBuilder(htmlCfg)
		if err != nil {
			return nil, fmt.Errorf("アプリケーションビルダーの初期化に失敗しました: %w", err)
		}

		md2htmlRunner, err = appBuilder.BuildRunner()
		if err != nil {
			return nil, fmt.Errorf("MarkdownToHtmlRunnerの初期化に失敗しました: %w", err)
		}
	}

	return runner.NewDefaultPublisherRunner(opts, appCtx.Writer, md2htmlRunner), nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, cfg *config.Config) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      cfg.GeminiAPIKey,
		Temperature: genai.Ptr(cfg.Temperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeImageClient は Monster API クライアントを初期化します。
func InitializeImageClient(cfg *config.Config, httpClient monster.Doer) *monster.Client {
	return monster.New(monster.Config{
		APIKey:       cfg.MonsterAPIKey,
		BaseURL:      cfg.MonsterBaseURL,
		PollInterval: config.DefaultPollInterval,
	}, httpClient)
}
