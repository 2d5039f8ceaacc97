package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string // 生成された storybook.md のパス
	HTMLPath     string // 生成された HTML のパス
}

const defaultStorybookName = "storybook.md"

// StorybookPublisher は絵本の組版（Markdown構築とHTML変換）と永続化を担います。
type StorybookPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
}

// NewStorybookPublisher は StorybookPublisher を生成します。
// htmlRunner が nil の場合、HTML変換はスキップされます。
func NewStorybookPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) *StorybookPublisher {
	return &StorybookPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
	}
}

// Publish は物語と挿絵からMarkdownを組み立てて書き出し、必要ならHTMLにも変換するのだ！
func (p *StorybookPublisher) Publish(ctx context.Context, story domain.Story, images []domain.GeneratedImage, opts Options) (PublishResult, error) {
	result := PublishResult{}

	markdown, err := ResolveOutputPath(opts.OutputDir, defaultStorybookName)
	if err != nil {
		return result, err
	}
	result.MarkdownPath = markdown

	content := p.buildMarkdown(story, images)

	if err := p.writer.Write(ctx, markdown, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}

	if p.htmlRunner != nil {
		slog.Info("絵本をHTMLに変換するのだ", "title", story.Title)
		htmlBuffer, err := p.htmlRunner.Run(ctx, story.Title, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(markdown, filepath.Ext(markdown)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	return result, nil
}

// buildMarkdown returns the Markdown content for the specified story.
func (p *StorybookPublisher) buildMarkdown(story domain.Story, images []domain.GeneratedImage) string {
	// シーン名 -> 挿絵URL の索引を作る
	illustrations := make(map[string]string, len(images))
	for _, img := range images {
		if img.SceneName != "" && img.URL != "" {
			illustrations[img.SceneName] = img.URL
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", story.Title))

	for _, scene := range story.Scenes {
		sb.WriteString(fmt.Sprintf("## %s\n\n", scene.Marker))

		if url, ok := illustrations[scene.Marker]; ok {
			sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", scene.Marker, url))
		}

		if scene.Body != "" {
			sb.WriteString(scene.Body)
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
