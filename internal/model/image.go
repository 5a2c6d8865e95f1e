// Package model はドメインモデルを定義する。
package model

// Image は評価対象の画像を表す。
// シードデータとして起動時に投入され、以降はイミュータブル。
type Image struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Assignment はユーザーと画像の割当関係を表す。
// 多対多のジョインレコード。シードデータとして投入され、以降はイミュータブル。
type Assignment struct {
	UserID  string
	ImageID string
}
