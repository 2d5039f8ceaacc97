package domain

import (
	"encoding/json"
	"testing"
)

func TestScenes_Upsert(t *testing.T) {
	t.Run("登場順が保持されること", func(t *testing.T) {
		var s Scenes
		s.Upsert("[Scene 1]", "morning")
		s.Upsert("[Scene 2]", "noon")
		s.Upsert("[Scene 3]", "night")

		if len(s) != 3 {
			t.Fatalf("シーン数が違うのだ: %d", len(s))
		}
		for i, want := range []string{"[Scene 1]", "[Scene 2]", "[Scene 3]"} {
			if s[i].Marker != want {
				t.Errorf("位置 %d のマーカーが違うのだ。期待: %s, 実際: %s", i, want, s[i].Marker)
			}
		}
	})

	t.Run("同じマーカーは本文を上書きし初出位置を維持すること", func(t *testing.T) {
		var s Scenes
		s.Upsert("[Scene 1]", "first")
		s.Upsert("[Scene 2]", "second")
		s.Upsert("[Scene 1]", "rewritten")

		if len(s) != 2 {
			t.Fatalf("シーン数が違うのだ: %d", len(s))
		}
		if s[0].Marker != "[Scene 1]" || s[0].Body != "rewritten" {
			t.Errorf("上書き結果が正しくないのだ: %+v", s[0])
		}
	})
}

func TestScenes_Get(t *testing.T) {
	s := Scenes{{Marker: "[Scene 1]", Body: "hello"}}

	if body, ok := s.Get("[Scene 1]"); !ok || body != "hello" {
		t.Errorf("登録済みマーカーを引けないのだ: %q, %v", body, ok)
	}
	if _, ok := s.Get("[Scene 9]"); ok {
		t.Error("未登録マーカーで ok=true になってはいけないのだ")
	}
}

func TestScenes_JSON(t *testing.T) {
	t.Run("登場順のままオブジェクトに直列化されること", func(t *testing.T) {
		s := Scenes{
			{Marker: "[Scene 2]", Body: "later"},
			{Marker: "[Scene 1]", Body: "earlier"},
		}
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("Marshal 失敗なのだ: %v", err)
		}
		want := `{"[Scene 2]":"later","[Scene 1]":"earlier"}`
		if string(data) != want {
			t.Errorf("期待: %s, 実際: %s", want, data)
		}
	})

	t.Run("オブジェクト形式から復元できること", func(t *testing.T) {
		var s Scenes
		if err := json.Unmarshal([]byte(`{"[Scene 1]":"a","[Scene 2]":"b"}`), &s); err != nil {
			t.Fatalf("Unmarshal 失敗なのだ: %v", err)
		}
		if len(s) != 2 {
			t.Fatalf("シーン数が違うのだ: %d", len(s))
		}
		if body, _ := s.Get("[Scene 2]"); body != "b" {
			t.Errorf("復元結果が正しくないのだ: %q", body)
		}
	})
}

func TestCharacterDescriptions_Lookup(t *testing.T) {
	d := CharacterDescriptions{"A": "a dog"}

	if desc, ok := d.Lookup("A"); !ok || desc != "a dog" {
		t.Errorf("登録済みの描写を引けないのだ: %q, %v", desc, ok)
	}
	if _, ok := d.Lookup("B"); ok {
		t.Error("未登録キャラクターで ok=true になってはいけないのだ")
	}
}

func TestImageRequest_JSON(t *testing.T) {
	inputJSON := `{
		"scene_description": "park",
		"characters_involved": ["A", "B"],
		"character_descriptions": {"A": "a dog", "B": "a cat"},
		"scene_name": "scene_1"
	}`

	var req ImageRequest
	if err := json.Unmarshal([]byte(inputJSON), &req); err != nil {
		t.Fatalf("パース失敗なのだ: %v", err)
	}
	if req.SceneDescription != "park" || req.SceneName != "scene_1" {
		t.Errorf("リクエスト内容が正しくパースされていないのだ: %+v", req)
	}
	if desc, ok := req.CharacterDescriptions.Lookup("B"); !ok || desc != "a cat" {
		t.Errorf("描写マップが復元されていないのだ: %q, %v", desc, ok)
	}
}
