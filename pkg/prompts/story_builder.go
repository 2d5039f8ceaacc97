package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

//go:embed story.md
var storyPromptTemplate string

// storyTemplateData は物語プロンプトのテンプレートに渡すデータ構造です。
type storyTemplateData struct {
	MoralValue     string
	CharacterNames string
}

// StoryPromptBuilder は、道徳テーマと登場人物から物語生成プロンプトを構築します。
type StoryPromptBuilder struct {
	tmpl *template.Template
}

// NewStoryPromptBuilder は StoryPromptBuilder を初期化します。
func NewStoryPromptBuilder() (*StoryPromptBuilder, error) {
	if storyPromptTemplate == "" {
		return nil, fmt.Errorf("プロンプトテンプレート 'story' (go:embed) の読み込みに失敗しました: 内容が空です")
	}

	tmpl, err := template.New("story").Parse(storyPromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("プロンプト 'story' の解析に失敗: %w", err)
	}

	return &StoryPromptBuilder{tmpl: tmpl}, nil
}

// Build は物語リクエストからプロンプト文字列を生成します。
// 登場人物名は ", " で連結され、同じ入力からは常に同じ出力が得られます。
func (b *StoryPromptBuilder) Build(req domain.StoryRequest) (string, error) {
	data := storyTemplateData{
		MoralValue:     req.MoralValue,
		CharacterNames: strings.Join(req.CharacterNames, ", "),
	}

	var sb strings.Builder
	if err := b.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("プロンプトテンプレートの実行に失敗しました: %w", err)
	}

	return sb.String(), nil
}
