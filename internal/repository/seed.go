package repository

import "github.com/hitoshi/assessman/internal/model"

// SeedUsers はデモ用のユーザーシードデータを返す。
// パスワードは平文のプレースホルダー（デモ専用）。
func SeedUsers() []model.User {
	return []model.User{
		{ID: "user1", Username: "user1", Password: "password1", Email: "user1@example.com"},
		{ID: "user2", Username: "user2", Password: "password2", Email: "user2@example.com"},
		{ID: "test1", Username: "test1", Password: "test1", Email: "user3@example.com"},
	}
}

// SeedImages はデモ用の画像シードデータを返す。
func SeedImages() []model.Image {
	return []model.Image{
		{ID: "img001", URL: "https://placehold.co/600x450/a4a4a4/ffffff?text=A1", Description: "風景画像 A1"},
		{ID: "img002", URL: "https://placehold.co/600x450/cccccc/ffffff?text=A2", Description: "都市画像 A2"},
		{ID: "img003", URL: "https://placehold.co/600x450/999999/ffffff?text=A3", Description: "動物画像 A3"},
		{ID: "img004", URL: "https://placehold.co/600x450/bbbbbb/ffffff?text=B1", Description: "風景画像 B1"},
		{ID: "img005", URL: "https://placehold.co/600x450/dddddd/ffffff?text=B2", Description: "都市画像 B2"},
	}
}

// SeedAssignments はデモ用のユーザー・画像割当シードデータを返す。
// すべての割当は存在するユーザーIDと画像IDを参照する。
func SeedAssignments() []model.Assignment {
	return []model.Assignment{
		{UserID: "user1", ImageID: "img001"},
		{UserID: "user1", ImageID: "img002"},
		{UserID: "user1", ImageID: "img003"},
		{UserID: "user2", ImageID: "img004"},
		{UserID: "user2", ImageID: "img005"},
	}
}
