// File: internal/model/user.go
package model

// User 對應 users 資料表的一列。
// PasswordHash 只在 store 與 service/password 之間流動，永遠不序列化進回應。
type User struct {
	ID           int    `db:"user_id" json:"user_id"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	PasswordHash string `db:"password_hash" json:"-"`
}
