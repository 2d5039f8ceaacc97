package generator

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/monster"
	"github.com/shouni/go-storybook-kit/pkg/prompts"
)

// 画像生成の固定パラメータです。全シーンで同一の値を使い、
// シード値固定により同じプロンプトから同じ絵柄が再現されます。
const (
	imageSamples       = 1
	imageSteps         = 50
	imageAspectRatio   = "square"
	imageGuidanceScale = 7.5
	imageSeed          = 2414
)

// SceneIllustrator は、シーン描写とキャラクター設定から挿絵を生成します。
type SceneIllustrator struct {
	imageClient  ImageGenerator
	model        string
	rateInterval time.Duration
}

// NewSceneIllustrator は SceneIllustrator を生成します。
// rateInterval は一括生成時のリクエスト間隔です。
func NewSceneIllustrator(client ImageGenerator, model string, rateInterval time.Duration) *SceneIllustrator {
	return &SceneIllustrator{
		imageClient:  client,
		model:        model,
		rateInterval: rateInterval,
	}
}

// IllustrateScene は1シーン分の挿絵を生成し、最初の成果物URLを返します。
// 登場キャラクターに外見定義が欠けていればプロンプトを作らずにエラーを返します。
func (il *SceneIllustrator) IllustrateScene(ctx context.Context, req domain.ImageRequest) (domain.GeneratedImage, error) {
	pb := prompts.NewScenePromptBuilder(req.CharacterDescriptions)
	prompt, err := pb.Build(req.SceneDescription, req.CharactersInvolved)
	if err != nil {
		return domain.GeneratedImage{}, err
	}

	input := monster.Input{
		Prompt:         prompt,
		NegativePrompt: prompts.NegativePrompt,
		Samples:        imageSamples,
		Steps:          imageSteps,
		AspectRatio:    imageAspectRatio,
		GuidanceScale:  imageGuidanceScale,
		Seed:           imageSeed,
	}

	result, err := il.imageClient.Generate(ctx, il.model, input)
	if err != nil {
		return domain.GeneratedImage{}, err
	}

	url, err := result.First()
	if err != nil {
		return domain.GeneratedImage{}, err
	}

	return domain.GeneratedImage{URL: url, SceneName: req.SceneName}, nil
}

// IllustrateStory は物語の全シーンの挿絵を並列で生成するのだ。
//
// 結果はシーンの並び順のまま返ります。characters が全シーン共通の
// 登場キャラクターとして使われます。どれか1枚でも失敗すれば全体が失敗です。
func (il *SceneIllustrator) IllustrateStory(ctx context.Context, story domain.Story, characters []string, descriptions domain.CharacterDescriptions) ([]domain.GeneratedImage, error) {
	scenes := story.Scenes
	images := make([]domain.GeneratedImage, len(scenes))
	eg, egCtx := errgroup.WithContext(ctx)

	// Burst 2 により、開始直後は2枚まで同時にリクエストを開始できるのだ
	limiter := rate.NewLimiter(rate.Every(il.rateInterval), 2)
	slog.Info("並列挿絵生成を開始するのだ", "count", len(scenes), "interval", il.rateInterval)

	for i, scene := range scenes {
		i, scene := i, scene // ゴルーチンのクロージャ対策なのだ

		eg.Go(func() error {
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			slog.Info("挿絵を生成中...", "scene", scene.Marker)
			image, err := il.IllustrateScene(egCtx, domain.ImageRequest{
				SceneDescription:      scene.Body,
				CharactersInvolved:    characters,
				CharacterDescriptions: descriptions,
				SceneName:             scene.Marker,
			})
			if err != nil {
				slog.Error("挿絵の生成に失敗したのだ", "scene", scene.Marker, "error", err)
				return err
			}

			images[i] = image
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("すべての挿絵が生成されたのだ", "total", len(images))
	return images, nil
}
