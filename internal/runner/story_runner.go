package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/generator"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// StoryRunner は物語生成パイプラインのインターフェースなのだ。
type StoryRunner interface {
	// Run は物語生成を実行し、構造化された物語を返すのだ。
	Run(ctx context.Context, req domain.StoryRequest) (domain.Story, error)
	// Save は物語をJSONとして指定パスに書き出すのだ。
	Save(ctx context.Context, story domain.Story, path string) error
}

// DefaultStoryRunner は pkg/generator を利用した標準実装です。
type DefaultStoryRunner struct {
	storyGen *generator.StoryGenerator
	writer   remoteio.OutputWriter
}

func NewDefaultStoryRunner(storyGen *generator.StoryGenerator, writer remoteio.OutputWriter) *DefaultStoryRunner {
	return &DefaultStoryRunner{
		storyGen: storyGen,
		writer:   writer,
	}
}

// Run は道徳テーマと登場人物から物語を生成するのだ。
func (sr *DefaultStoryRunner) Run(ctx context.Context, req domain.StoryRequest) (domain.Story, error) {
	slog.Info("物語の生成を開始するのだ", "moral", req.MoralValue, "characters", req.CharacterNames)

	story, err := sr.storyGen.Generate(ctx, req)
	if err != nil {
		return domain.Story{}, fmt.Errorf("物語の生成に失敗したのだ: %w", err)
	}

	return story, nil
}

// Save は物語をJSONとして書き出すのだ。
func (sr *DefaultStoryRunner) Save(ctx context.Context, story domain.Story, path string) error {
	data, err := json.MarshalIndent(story, "", "  ")
	if err != nil {
		return fmt.Errorf("物語のエンコードに失敗したのだ: %w", err)
	}

	if err := sr.writer.Write(ctx, path, bytes.NewReader(data), "application/json; charset=utf-8"); err != nil {
		return fmt.Errorf("物語の保存に失敗したのだ: %w", err)
	}

	slog.Info("物語を保存したのだ", "path", path)
	return nil
}
