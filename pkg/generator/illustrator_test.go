package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shouni/go-storybook-kit/pkg/domain"
	"github.com/shouni/go-storybook-kit/pkg/monster"
)

// recordingImageGenerator は渡されたパラメータを記録し、プロンプトごとに固定URLを返す偽物なのだ。
type recordingImageGenerator struct {
	mu     sync.Mutex
	inputs []monster.Input
	models []string
	err    error
}

func (r *recordingImageGenerator) Generate(ctx context.Context, model string, input monster.Input) (*monster.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputs = append(r.inputs, input)
	r.models = append(r.models, model)
	if r.err != nil {
		return nil, r.err
	}
	return &monster.Result{
		Status: monster.StatusCompleted,
		Output: []string{fmt.Sprintf("https://img.test/%d.png", len(r.inputs))},
	}, nil
}

func TestIllustrateScene(t *testing.T) {
	req := domain.ImageRequest{
		SceneDescription:      "park",
		CharactersInvolved:    []string{"A", "B"},
		CharacterDescriptions: domain.CharacterDescriptions{"A": "a dog", "B": "a cat"},
		SceneName:             "[Scene 1]",
	}

	t.Run("固定パラメータとプロンプトで生成を依頼すること", func(t *testing.T) {
		client := &recordingImageGenerator{}
		il := NewSceneIllustrator(client, "txt2img", time.Millisecond)

		image, err := il.IllustrateScene(context.Background(), req)
		if err != nil {
			t.Fatalf("IllustrateScene に失敗したのだ: %v", err)
		}
		if image.URL != "https://img.test/1.png" {
			t.Errorf("成果物URLが違うのだ: %q", image.URL)
		}
		if image.SceneName != "[Scene 1]" {
			t.Errorf("シーン名が引き継がれていないのだ: %q", image.SceneName)
		}

		input := client.inputs[0]
		if input.Prompt != "A: a dog\nB: a cat\nScene: park." {
			t.Errorf("プロンプトが違うのだ: %q", input.Prompt)
		}
		if input.NegativePrompt != "deformed, bad anatomy, disfigured, poorly drawn face" {
			t.Errorf("否定プロンプトが違うのだ: %q", input.NegativePrompt)
		}
		if input.Samples != 1 || input.Steps != 50 || input.AspectRatio != "square" ||
			input.GuidanceScale != 7.5 || input.Seed != 2414 {
			t.Errorf("固定パラメータが違うのだ: %+v", input)
		}
		if client.models[0] != "txt2img" {
			t.Errorf("モデル名が違うのだ: %q", client.models[0])
		}
	})

	t.Run("外見定義が欠けていれば生成を依頼しないこと", func(t *testing.T) {
		client := &recordingImageGenerator{}
		il := NewSceneIllustrator(client, "txt2img", time.Millisecond)

		broken := req
		broken.CharacterDescriptions = domain.CharacterDescriptions{"A": "a dog"}

		_, err := il.IllustrateScene(context.Background(), broken)
		if !errors.Is(err, domain.ErrMissingCharacterDescription) {
			t.Fatalf("ErrMissingCharacterDescription が返るはずなのだ: %v", err)
		}
		if len(client.inputs) != 0 {
			t.Error("不完全なプロンプトで依頼してはいけないのだ")
		}
	})

	t.Run("成果物が空なら ErrEmptyGenerationResult が伝播すること", func(t *testing.T) {
		client := &emptyImageGenerator{}
		il := NewSceneIllustrator(client, "txt2img", time.Millisecond)

		_, err := il.IllustrateScene(context.Background(), req)
		if !errors.Is(err, domain.ErrEmptyGenerationResult) {
			t.Errorf("ErrEmptyGenerationResult が返るはずなのだ: %v", err)
		}
	})
}

type emptyImageGenerator struct{}

func (e *emptyImageGenerator) Generate(ctx context.Context, model string, input monster.Input) (*monster.Result, error) {
	return &monster.Result{Status: monster.StatusCompleted}, nil
}

func TestIllustrateStory(t *testing.T) {
	var story domain.Story
	story.Scenes.Upsert("[Scene 1]", "Riko finds a coin.")
	story.Scenes.Upsert("[Scene 2]", "Riko returns the coin.")
	story.Scenes.Upsert("[Scene 3]", "Everyone smiles.")

	characters := []string{"Riko"}
	descriptions := domain.CharacterDescriptions{"Riko": "a small brown puppy"}

	t.Run("シーンの並び順のまま結果が返ること", func(t *testing.T) {
		client := &recordingImageGenerator{}
		il := NewSceneIllustrator(client, "txt2img", time.Millisecond)

		images, err := il.IllustrateStory(context.Background(), story, characters, descriptions)
		if err != nil {
			t.Fatalf("IllustrateStory に失敗したのだ: %v", err)
		}
		if len(images) != 3 {
			t.Fatalf("枚数が違うのだ: %d", len(images))
		}
		for i, want := range []string{"[Scene 1]", "[Scene 2]", "[Scene 3]"} {
			if images[i].SceneName != want {
				t.Errorf("並び順が崩れているのだ: images[%d] = %q", i, images[i].SceneName)
			}
			if images[i].URL == "" {
				t.Errorf("images[%d] のURLが空なのだ", i)
			}
		}
	})

	t.Run("1枚でも失敗すれば全体が失敗すること", func(t *testing.T) {
		client := &recordingImageGenerator{err: errors.New("provider down")}
		il := NewSceneIllustrator(client, "txt2img", time.Millisecond)

		if _, err := il.IllustrateStory(context.Background(), story, characters, descriptions); err == nil {
			t.Error("失敗が伝播するはずなのだ")
		}
	})
}
