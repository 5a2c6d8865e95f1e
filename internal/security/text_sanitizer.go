// Package security はアプリケーションのセキュリティ機能を提供する。
//
// TextSanitizerService はユーザーが提出した自由記述テキストをサニタイズし、
// フロントエンドでの表示時のXSSリスクからユーザーを保護する。
// bluemondayのStrictPolicyを使用し、HTMLタグをすべて除去する。
package security

import "github.com/microcosm-cc/bluemonday"

// TextSanitizerService は自由記述テキストのサニタイズ機能のインターフェースを定義する。
// 評価のresponseText保存前に使用される。
type TextSanitizerService interface {
	// Sanitize はテキストからHTMLタグをすべて除去して返す。
	// プレーンテキスト入力はそのまま通過する。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// textSanitizer はTextSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type textSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer はTextSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグを一切許可しないため、script等の危険な要素は
// 属性含めてすべて除去される。
func NewTextSanitizer() *textSanitizer {
	return &textSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize はテキストからHTMLタグをすべて除去して返す。
func (s *textSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
