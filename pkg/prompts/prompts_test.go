package prompts

import (
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

func TestStoryPromptBuilder(t *testing.T) {
	builder, err := NewStoryPromptBuilder()
	if err != nil {
		t.Fatalf("初期化に失敗したのだ: %v", err)
	}

	req := domain.StoryRequest{
		MoralValue:     "honesty",
		CharacterNames: []string{"Riko", "Taro"},
	}

	t.Run("テーマと登場人物がプロンプトに埋め込まれること", func(t *testing.T) {
		prompt, err := builder.Build(req)
		if err != nil {
			t.Fatalf("Build に失敗したのだ: %v", err)
		}
		if !strings.Contains(prompt, "the moral value of honesty") {
			t.Error("道徳テーマが埋め込まれていないのだ")
		}
		if !strings.Contains(prompt, "Include character names: Riko, Taro") {
			t.Error("登場人物名が ', ' 連結で埋め込まれていないのだ")
		}
		if !strings.Contains(prompt, "Title: [Story Title]") {
			t.Error("出力フォーマット指示が欠けているのだ")
		}
		if !strings.Contains(prompt, "[Scene X]") {
			t.Error("シーンマーカー指示が欠けているのだ")
		}
	})

	t.Run("同じ入力からは同じプロンプトが得られること", func(t *testing.T) {
		first, _ := builder.Build(req)
		second, _ := builder.Build(req)
		if first != second {
			t.Error("プロンプトが決定的でないのだ")
		}
	})
}

func TestScenePromptBuilder(t *testing.T) {
	descriptions := domain.CharacterDescriptions{
		"A": "a dog",
		"B": "a cat",
	}
	builder := NewScenePromptBuilder(descriptions)

	t.Run("外見定義とシーン描写が所定の形式で結合されること", func(t *testing.T) {
		prompt, err := builder.Build("park", []string{"A", "B"})
		if err != nil {
			t.Fatalf("Build に失敗したのだ: %v", err)
		}
		want := "A: a dog\nB: a cat\nScene: park."
		if prompt != want {
			t.Errorf("プロンプトが違うのだ:\ngot:  %q\nwant: %q", prompt, want)
		}
	})

	t.Run("登場人物の並び順が保存されること", func(t *testing.T) {
		prompt, err := builder.Build("park", []string{"B", "A"})
		if err != nil {
			t.Fatalf("Build に失敗したのだ: %v", err)
		}
		if !strings.HasPrefix(prompt, "B: a cat\nA: a dog\n") {
			t.Errorf("入力順で並ぶはずなのだ: %q", prompt)
		}
	})

	t.Run("外見定義が無ければエラーになり部分結果を返さないこと", func(t *testing.T) {
		prompt, err := builder.Build("park", []string{"A", "C"})
		if !errors.Is(err, domain.ErrMissingCharacterDescription) {
			t.Errorf("ErrMissingCharacterDescription が返るはずなのだ: %v", err)
		}
		if !strings.Contains(err.Error(), `"C"`) {
			t.Errorf("どのキャラクターが欠けたか分かるはずなのだ: %v", err)
		}
		if prompt != "" {
			t.Errorf("部分的なプロンプトを返してはいけないのだ: %q", prompt)
		}
	})

	t.Run("登場人物なしでもシーン行だけは作られること", func(t *testing.T) {
		prompt, err := builder.Build("a quiet forest", nil)
		if err != nil {
			t.Fatalf("Build に失敗したのだ: %v", err)
		}
		if prompt != "Scene: a quiet forest." {
			t.Errorf("プロンプトが違うのだ: %q", prompt)
		}
	})
}
