package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

// wordsWithMarker は指定語数ちょうどのテキストをマーカー付きで組み立てるヘルパーです。
func wordsWithMarker(n int) string {
	// "[Scene" と "1]" の2語もカウントに含める
	parts := []string{"[Scene", "1]"}
	for i := 2; i < n; i++ {
		parts = append(parts, "word")
	}
	return strings.Join(parts, " ")
}

func TestValidate(t *testing.T) {
	t.Run("ちょうど500語でマーカーがあれば合格すること", func(t *testing.T) {
		raw := wordsWithMarker(500)
		if got := len(strings.Fields(raw)); got != 500 {
			t.Fatalf("テストデータの語数が違うのだ: %d", got)
		}
		if err := Validate(raw); err != nil {
			t.Errorf("500語は合格のはずなのだ: %v", err)
		}
	})

	t.Run("501語はマーカーがあっても不合格になること", func(t *testing.T) {
		err := Validate(wordsWithMarker(501))
		if !errors.Is(err, domain.ErrInvalidStory) {
			t.Errorf("ErrInvalidStory が返るはずなのだ: %v", err)
		}
	})

	t.Run("マーカーが無ければ語数に関わらず不合格になること", func(t *testing.T) {
		err := Validate("Title: T\nonce upon a time")
		if !errors.Is(err, domain.ErrInvalidStory) {
			t.Errorf("ErrInvalidStory が返るはずなのだ: %v", err)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("タイトルとシーンに分解されること", func(t *testing.T) {
		raw := "Title: T\n[Scene 1]\nHello\nworld\n[Scene 2]\nBye"
		story := Parse(raw)

		if story.Title != "T" {
			t.Errorf("タイトルが違うのだ: %q", story.Title)
		}
		if len(story.Scenes) != 2 {
			t.Fatalf("シーン数が違うのだ: %d", len(story.Scenes))
		}
		if body, _ := story.Scenes.Get("[Scene 1]"); body != "Hello\nworld" {
			t.Errorf("[Scene 1] の本文が違うのだ: %q", body)
		}
		if body, _ := story.Scenes.Get("[Scene 2]"); body != "Bye" {
			t.Errorf("[Scene 2] の本文が違うのだ: %q", body)
		}
		if story.RawText != raw {
			t.Error("RawText は入力をそのまま保持するのだ")
		}
	})

	t.Run("末尾の本文なしマーカーは記録されないこと", func(t *testing.T) {
		// 既存挙動のピン留め: 途中の空シーンは確定されるが、末尾の空シーンは落ちる
		story := Parse("Title: T\n[Scene 1]\nHello\n[Scene 2]")

		if len(story.Scenes) != 1 {
			t.Fatalf("シーン数が違うのだ: %d", len(story.Scenes))
		}
		if _, ok := story.Scenes.Get("[Scene 2]"); ok {
			t.Error("本文の無い末尾シーンは含まれてはいけないのだ")
		}
	})

	t.Run("途中の本文なしマーカーは空本文で確定されること", func(t *testing.T) {
		story := Parse("Title: T\n[Scene 1]\n[Scene 2]\nBye")

		if body, ok := story.Scenes.Get("[Scene 1]"); !ok || body != "" {
			t.Errorf("途中の空シーンは空本文で確定されるのだ: %q, %v", body, ok)
		}
	})

	t.Run("最初のマーカーより前の行は捨てられること", func(t *testing.T) {
		story := Parse("Title: T\nprologue line\n[Scene 1]\nHello")

		if body, _ := story.Scenes.Get("[Scene 1]"); body != "Hello" {
			t.Errorf("マーカー前の行が混入しているのだ: %q", body)
		}
	})

	t.Run("空行はシーン本文に含まれないこと", func(t *testing.T) {
		story := Parse("Title: T\n[Scene 1]\nHello\n\nworld")

		if body, _ := story.Scenes.Get("[Scene 1]"); body != "Hello\nworld" {
			t.Errorf("空行の扱いが違うのだ: %q", body)
		}
	})

	t.Run("マーカー行の前後空白はトリムされてキーになること", func(t *testing.T) {
		story := Parse("Title: T\n  [Scene 1]  \nHello")

		if _, ok := story.Scenes.Get("[Scene 1]"); !ok {
			t.Error("トリム済みマーカーで引けるはずなのだ")
		}
	})
}
