// File: internal/service/password.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordMismatch 明文密碼與哈希不符。
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrInvalidDigest 儲存的哈希不是合法的 bcrypt 格式。
	ErrInvalidDigest = errors.New("invalid password digest")
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串。
// bcrypt 每次都產生新的隨機 salt，同一組密碼重複哈希的結果不同。
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希。
// 不符回傳 ErrPasswordMismatch，哈希格式壞掉回傳 ErrInvalidDigest。
func ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return ErrInvalidDigest
}
