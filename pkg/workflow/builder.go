package workflow

import (
	"fmt"

	"github.com/shouni/go-storybook-kit/pkg/generator"
	"github.com/shouni/go-storybook-kit/pkg/monster"
	"github.com/shouni/go-storybook-kit/pkg/prompts"
	"github.com/shouni/go-storybook-kit/pkg/publisher"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/builder"
)

// Builder はライブラリ利用者向けに、絵本生成の各コンポーネントを構築・管理するのだ。
// CLI を介さずにこのキットを組み込むアプリケーションは、ここから各部品を受け取ります。
type Builder struct {
	cfg         Config
	httpClient  httpkit.HTTPClient
	aiClient    gemini.GenerativeModel
	writer      remoteio.OutputWriter
	imageClient *monster.Client
}

// NewBuilder は Config と共有クライアントを基に新しい Builder を作成するのだ。
func NewBuilder(cfg Config, httpClient httpkit.HTTPClient, aiClient gemini.GenerativeModel, writer remoteio.OutputWriter) (*Builder, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient は必須です")
	}
	if writer == nil {
		return nil, fmt.Errorf("writer は必須です")
	}

	imageClient := monster.New(monster.Config{
		APIKey:  cfg.MonsterAPIKey,
		BaseURL: cfg.MonsterBaseURL,
	}, httpClient)

	return &Builder{
		cfg:         cfg,
		httpClient:  httpClient,
		aiClient:    aiClient,
		writer:      writer,
		imageClient: imageClient,
	}, nil
}

// BuildStoryGenerator は物語生成を担当するコンポーネントを作成するのだ。
func (b *Builder) BuildStoryGenerator() (*generator.StoryGenerator, error) {
	pb, err := prompts.NewStoryPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの作成に失敗しました: %w", err)
	}

	textGen := generator.NewGeminiTextGenerator(b.aiClient, b.cfg.GeminiModel)
	return generator.NewStoryGenerator(pb, textGen, b.cfg.MaxAttempts, b.cfg.RequestTimeout), nil
}

// BuildSceneIllustrator は挿絵生成を担当するコンポーネントを作成するのだ。
func (b *Builder) BuildSceneIllustrator() *generator.SceneIllustrator {
	return generator.NewSceneIllustrator(b.imageClient, b.cfg.ImageModel, b.cfg.RateInterval)
}

// BuildPublisher は成果物のパブリッシュを担当するコンポーネントを作成するのだ。
// enableHTML が真の場合、Markdownに加えてHTML変換も有効になります。
func (b *Builder) BuildPublisher(enableHTML bool) (*publisher.StorybookPublisher, error) {
	if !enableHTML {
		return publisher.NewStorybookPublisher(b.writer, nil), nil
	}

	htmlCfg := builder.BuilderConfig{
		EnableHardWraps: true,
		Mode:            "storybook",
	}
	md2htmlBuilder, err := builder.NewBuilder(htmlCfg)
	if err != nil {
		return nil, fmt.Errorf("md2htmlBuilderの初期化に失敗しました: %w", err)
	}
	md2htmlRunner, err := md2htmlBuilder.BuildRunner()
	if err != nil {
		return nil, fmt.Errorf("md2htmlrunnerの初期化に失敗しました: %w", err)
	}

	return publisher.NewStorybookPublisher(b.writer, md2htmlRunner), nil
}
