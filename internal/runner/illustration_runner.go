package runner

import (
	"context"
	"fmt"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/generator"
)

// IllustrationRunner は挿絵生成のインターフェースです。
type IllustrationRunner interface {
	// RunScene は1シーン分の挿絵を生成するのだ。
	RunScene(ctx context.Context, req domain.ImageRequest) (domain.GeneratedImage, error)
	// RunStory は物語の全シーンの挿絵を並列生成するのだ。
	RunStory(ctx context.Context, story domain.Story, characters []string, descriptions domain.CharacterDescriptions) ([]domain.GeneratedImage, error)
}

// DefaultIllustrationRunner は pkg/generator を利用した標準実装です。
type DefaultIllustrationRunner struct {
	illustrator *generator.SceneIllustrator
}

func NewDefaultIllustrationRunner(illustrator *generator.SceneIllustrator) *DefaultIllustrationRunner {
	return &DefaultIllustrationRunner{illustrator: illustrator}
}

func (ir *DefaultIllustrationRunner) RunScene(ctx context.Context, req domain.ImageRequest) (domain.GeneratedImage, error) {
	image, err := ir.illustrator.IllustrateScene(ctx, req)
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("挿絵の生成に失敗したのだ: %w", err)
	}
	return image, nil
}

func (ir *DefaultIllustrationRunner) RunStory(ctx context.Context, story domain.Story, characters []string, descriptions domain.CharacterDescriptions) ([]domain.GeneratedImage, error) {
	images, err := ir.illustrator.IllustrateStory(ctx, story, characters, descriptions)
	if err != nil {
		return nil, fmt.Errorf("挿絵の一括生成に失敗したのだ: %w", err)
	}
	return images, nil
}
