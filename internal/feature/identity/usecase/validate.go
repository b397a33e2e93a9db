package usecase

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	// minNameLength / maxNameLength は氏名の許容文字数を定義します。
	minNameLength = 2
	maxNameLength = 100

	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// minAge は登録可能な最低年齢です。
	minAge = 1
)

var (
	// phoneRe は10桁の番号、または0で始まる11桁の番号に一致します。
	phoneRe = regexp.MustCompile(`^(0\d{10}|\d{10})$`)

	// emailRe は許可された主要プロバイダーのメールアドレスに一致します。
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@(gmail\.com|yahoo\.com|hotmail\.com|outlook\.com)$`)
)

// genders は受け付ける性別の値です。
var genders = map[string]bool{
	"male":   true,
	"female": true,
}

// SignupInput はアカウント登録の入力フィールドを保持します。
type SignupInput struct {
	Name          string
	Phone         string
	Age           int
	Gender        string
	Email         string
	GuardianEmail string
	GuardianPhone string
	Password      string
}

// validateSignup は各フィールドのフォーマット規則を検証します。
// 最初に違反したフィールドを *ValidationError として返します。
func validateSignup(in SignupInput) error {
	// 文字数はバイト数ではなくルーン数で数える
	if l := utf8.RuneCountInString(in.Name); l < minNameLength || l > maxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("name must be %d-%d characters", minNameLength, maxNameLength)}
	}
	if !phoneRe.MatchString(in.Phone) {
		return &ValidationError{Field: "phone", Message: "phone must be 10 digits, or 11 digits starting with 0"}
	}
	if in.Age < minAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("age must be at least %d", minAge)}
	}
	if !genders[in.Gender] {
		return &ValidationError{Field: "gender", Message: "gender must be male or female"}
	}
	if !emailRe.MatchString(in.Email) {
		return &ValidationError{Field: "email", Message: "email must be a valid address from a renowned provider"}
	}
	if !emailRe.MatchString(in.GuardianEmail) {
		return &ValidationError{Field: "guardianEmail", Message: "guardian email must be a valid address from a renowned provider"}
	}
	if !phoneRe.MatchString(in.GuardianPhone) {
		return &ValidationError{Field: "guardianPhone", Message: "guardian phone must be 10 digits, or 11 digits starting with 0"}
	}
	if len(in.Password) < minPasswordLength {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters long", minPasswordLength)}
	}
	return nil
}
