package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/builder"
	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/publisher"

	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

const defaultStoryName = "story.json"

// ExecuteStoryOnly は、物語の生成（Phase 1）だけを実行してJSONで保存するのだ。
func ExecuteStoryOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	story, err := runStoryStep(ctx, appCtx)
	if err != nil {
		return err
	}

	slog.Info("物語の生成が完了したのだ！", "title", story.Title, "scenes", len(story.Scenes))
	return nil
}

// ExecuteImageOnly は、指定されたJSONファイル（挿絵リクエスト）を読み込み、
// 1シーン分の挿絵生成（Phase 2）だけを実行するのだ。
func ExecuteImageOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// 挿絵リクエストJSONの読み込み
	rc, err := appCtx.Reader.Open(ctx, cfg.Options.RequestFile)
	if err != nil {
		return fmt.Errorf("リクエストファイル '%s' の読み込みに失敗しました: %w", cfg.Options.RequestFile, err)
	}
	defer rc.Close()

	var req domain.ImageRequest
	if err := json.NewDecoder(rc).Decode(&req); err != nil {
		return fmt.Errorf("リクエストファイル '%s' のデコードに失敗しました: %w", cfg.Options.RequestFile, err)
	}

	illustrationRunner, err := builder.BuildIllustrationRunner(ctx, appCtx)
	if err != nil {
		return fmt.Errorf("IllustrationRunnerの構築に失敗したのだ: %w", err)
	}

	image, err := illustrationRunner.RunScene(ctx, req)
	if err != nil {
		return err
	}

	slog.Info("挿絵の生成が完了したのだ！", "scene", image.SceneName, "url", image.URL)
	return nil
}

// Execute は物語生成・挿絵生成・公開までの全工程を一気に実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Phase 1: Story Phase (物語の生成) ---
	story, err := runStoryStep(ctx, appCtx)
	if err != nil {
		return err
	}

	// --- Phase 2: Image Phase (挿絵の生成) ---
	images, err := runImageStep(ctx, appCtx, story)
	if err != nil {
		return err
	}

	// --- Phase 3: Publish Phase (公開/保存) ---
	result, err := runPublishStep(ctx, appCtx, story, images)
	if err != nil {
		return err
	}

	slog.Info("すべての生成工程が完了したのだ！", "markdown", result.MarkdownPath, "html", result.HTMLPath)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	aiClient, err := builder.InitializeAIClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	imageClient := builder.InitializeImageClient(cfg, httpClient)

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, imageClient, reader, writer)
	return &appCtx, nil
}

// runStoryStep は StoryRunner を使って物語を生成し、JSONで保存するのだ
func runStoryStep(ctx context.Context, appCtx *builder.AppContext) (domain.Story, error) {
	slog.Info("Phase 1: 物語の生成を開始するのだ...")
	storyRunner, err := builder.BuildStoryRunner(ctx, appCtx)
	if err != nil {
		return domain.Story{}, fmt.Errorf("StoryRunnerの構築に失敗したのだ: %w", err)
	}

	req := domain.StoryRequest{
		MoralValue:     appCtx.Options.MoralValue,
		CharacterNames: appCtx.Options.CharacterNames,
	}

	story, err := storyRunner.Run(ctx, req)
	if err != nil {
		return domain.Story{}, err
	}

	storyPath, err := publisher.ResolveOutputPath(appCtx.Options.OutputDir, defaultStoryName)
	if err != nil {
		return domain.Story{}, err
	}
	if err := storyRunner.Save(ctx, story, storyPath); err != nil {
		return domain.Story{}, err
	}

	return story, nil
}

// runImageStep は IllustrationRunner を使って全シーンの挿絵を並列生成するのだ
func runImageStep(ctx context.Context, appCtx *builder.AppContext, story domain.Story) ([]domain.GeneratedImage, error) {
	slog.Info("Phase 2: 挿絵の生成を開始するのだ...", "scenes", len(story.Scenes))

	descriptions, err := domain.LoadDescriptions(appCtx.Options.DescriptionsFile)
	if err != nil {
		return nil, fmt.Errorf("外見定義の取得に失敗しました: %w", err)
	}

	illustrationRunner, err := builder.BuildIllustrationRunner(ctx, appCtx)
	if err != nil {
		return nil, fmt.Errorf("IllustrationRunnerの構築に失敗したのだ: %w", err)
	}

	images, err := illustrationRunner.RunStory(ctx, story, appCtx.Options.CharacterNames, descriptions)
	if err != nil {
		return nil, fmt.Errorf("挿絵の生成に失敗したのだ: %w", err)
	}
	return images, nil
}

// runPublishStep は PublisherRunner を使って最終成果物を保存するのだ
func runPublishStep(ctx context.Context, appCtx *builder.AppContext, story domain.Story, images []domain.GeneratedImage) (publisher.PublishResult, error) {
	slog.Info("Phase 3: 公開処理を開始するのだ...")
	publishRunner, err := builder.BuildPublisherRunner(ctx, appCtx)
	if err != nil {
		return publisher.PublishResult{}, fmt.Errorf("PublishRunnerの構築に失敗したのだ: %w", err)
	}

	result, err := publishRunner.Run(ctx, story, images)
	if err != nil {
		return publisher.PublishResult{}, fmt.Errorf("公開処理に失敗したのだ: %w", err)
	}
	return result, nil
}
