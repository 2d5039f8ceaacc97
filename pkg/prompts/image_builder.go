package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

// NegativePrompt は全シーン共通で画像生成に渡す否定プロンプトです。
const NegativePrompt = "deformed, bad anatomy, disfigured, poorly drawn face"

// ScenePromptBuilder は、キャラクター設定を考慮してシーン画像のプロンプトを構築します。
type ScenePromptBuilder struct {
	descriptions domain.CharacterDescriptions
}

// NewScenePromptBuilder は新しい ScenePromptBuilder を生成します。
func NewScenePromptBuilder(descriptions domain.CharacterDescriptions) *ScenePromptBuilder {
	return &ScenePromptBuilder{descriptions: descriptions}
}

// Build は登場キャラクターの外見定義とシーン描写を1つのプロンプトに結合します。
//
// characters の並び順のまま "名前: 外見" を1行ずつ積み、最後に "Scene: 描写."
// を置きます。外見定義の無いキャラクターが1人でもいれば、位置特定できるメッセージと
// ともに domain.ErrMissingCharacterDescription を返し、部分的なプロンプトは作りません。
func (pb *ScenePromptBuilder) Build(sceneDescription string, characters []string) (string, error) {
	var sb strings.Builder
	for _, name := range characters {
		desc, ok := pb.descriptions.Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %q", domain.ErrMissingCharacterDescription, name)
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(desc)
		sb.WriteString("\n")
	}
	sb.WriteString("Scene: ")
	sb.WriteString(sceneDescription)
	sb.WriteString(".")

	return sb.String(), nil
}
