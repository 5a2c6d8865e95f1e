// Package model はドメインモデルを定義する。
package model

// User は評価システムの利用ユーザーを表す。
// プロセス起動時にシードデータから生成され、以降はイミュータブル。
// Passwordは平文のプレースホルダー（本番ではハッシュ化が必須）。
type User struct {
	ID       string
	Username string
	Password string
	Email    string
}

// SanitizedUser はAPIレスポンス用のユーザー投影。
// Passwordフィールドを含まない。
type SanitizedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Sanitize はPasswordを除いたAPIレスポンス用の投影を返す。
func (u *User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
