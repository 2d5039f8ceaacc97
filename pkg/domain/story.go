package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Story は AI モデルから返された童話テキストの解析結果です。
type Story struct {
	Title   string `json:"title"`
	Scenes  Scenes `json:"scenes"`
	RawText string `json:"-"`
}

// Scene はシーンマーカー行（例: "[Scene 1]"）と、その本文を保持します。
type Scene struct {
	Marker string
	Body   string
}

// Scenes は登場順を保持したシーンの列です。
// 同じマーカーが再登場した場合は本文を上書きし、初出時の位置を維持します。
type Scenes []Scene

// Upsert はマーカーに対応する本文を登場順を保ったまま登録します。
func (s *Scenes) Upsert(marker, body string) {
	for i := range *s {
		if (*s)[i].Marker == marker {
			(*s)[i].Body = body
			return
		}
	}
	*s = append(*s, Scene{Marker: marker, Body: body})
}

// Get はマーカーに対応する本文を返します。存在しない場合は ok が false になります。
func (s Scenes) Get(marker string) (string, bool) {
	for _, sc := range s {
		if sc.Marker == marker {
			return sc.Body, true
		}
	}
	return "", false
}

// Map はマーカーから本文への検索用マップを生成します。順序情報は失われます。
func (s Scenes) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, sc := range s {
		m[sc.Marker] = sc.Body
	}
	return m
}

// MarshalJSON はシーンを登場順のまま JSON オブジェクトとして直列化します。
// map[string]string に変換するとキー順がソートされてしまうため、手で組み立てるのだ。
func (s Scenes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sc.Marker)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(sc.Body)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON は JSON オブジェクト形式のシーンを読み込みます。
// 標準の map デコードでは順序が保証されないため、トークン単位で走査します。
func (s *Scenes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scenes はオブジェクト形式である必要があります")
	}

	out := Scenes{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		marker, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("scenes のキーが文字列ではありません: %v", keyTok)
		}
		var body string
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("シーン %q の本文のデコードに失敗しました: %w", marker, err)
		}
		out.Upsert(marker, body)
	}

	*s = out
	return nil
}
