package domain

// StoryRequest は童話生成の1リクエストです。
// キャラクター名の重複は許容されます（一意性制約なし）。
type StoryRequest struct {
	MoralValue     string   `json:"moral_value"`
	CharacterNames []string `json:"character_names"`
}

// ImageRequest はシーン挿絵生成の1リクエストです。
type ImageRequest struct {
	SceneDescription      string                `json:"scene_description"`
	CharactersInvolved    []string              `json:"characters_involved"`
	CharacterDescriptions CharacterDescriptions `json:"character_descriptions"`

	// SceneName は成果物の配置名として使うだけで、内容の検証には関与しません。
	SceneName string `json:"scene_name"`
}

// CharacterDescriptions はキャラクター名から外見描写への対応表です。
type CharacterDescriptions map[string]string

// Lookup は名前に対応する描写を返します。
// マップへの直接アクセスではなく、必ずこのメソッドを経由して欠落を検出します。
func (d CharacterDescriptions) Lookup(name string) (string, bool) {
	desc, ok := d[name]
	return desc, ok
}

// GeneratedImage は外部プロバイダーにホストされた生成画像への参照です。
// 画像バイト列はこのサービスでは保持しません。
type GeneratedImage struct {
	// URL が実体ですが、外部契約との互換のためフィールド名は image_path のままなのだ。
	URL string `json:"image_path"`

	// SceneName は生成元のシーン名（出力の対応付け用）です。
	SceneName string `json:"scene_name,omitempty"`
}
