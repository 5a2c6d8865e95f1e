// Package model はドメインモデルを定義する。
package model

// Assessment はユーザーが提出した画像評価を表す。
// 提出時にのみ生成され、更新・削除されない（追記専用）。
// SubmittedAtはクライアント供給のタイムスタンプをそのまま保持するため
// 文字列として扱う（未指定時はサーバーがRFC3339で採番する）。
type Assessment struct {
	AssessmentID    string  `json:"assessmentId"`
	UserID          string  `json:"userId"`
	ImageID         string  `json:"imageId"`
	FinalScale      float64 `json:"finalScale"`
	FinalTranslateX float64 `json:"finalTranslateX"`
	FinalTranslateY float64 `json:"finalTranslateY"`
	ResponseText    string  `json:"responseText"`
	SubmittedAt     string  `json:"submittedAt"`
}
