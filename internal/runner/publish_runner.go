package runner

import (
	"context"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/publisher"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

// PublisherRunner はパブリッシュ処理のインターフェースです。
type PublisherRunner interface {
	Run(ctx context.Context, story domain.Story, images []domain.GeneratedImage) (publisher.PublishResult, error)
}

// DefaultPublisherRunner は pkg/publisher を利用した標準実装です。
type DefaultPublisherRunner struct {
	options   config.GenerateOptions
	publisher *publisher.StorybookPublisher
}

func NewDefaultPublisherRunner(options config.GenerateOptions, writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) *DefaultPublisherRunner {
	return &DefaultPublisherRunner{
		options:   options,
		publisher: publisher.NewStorybookPublisher(writer, htmlRunner),
	}
}

func (pr *DefaultPublisherRunner) Run(ctx context.Context, story domain.Story, images []domain.GeneratedImage) (publisher.PublishResult, error) {
	// internal/config の値を pkg/publisher 用の構造体に詰め替えます。
	opts := publisher.Options{
		OutputDir: pr.options.OutputDir,
	}

	return pr.publisher.Publish(ctx, story, images, opts)
}
