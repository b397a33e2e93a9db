// Package dto defines data transfer objects for the identity feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// Gin's binding tags only check presence; the field-format rules (phone shape,
// email provider allow-list, name length) live in the usecase so failures come
// back as structured per-field errors.
type SignupReq struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Gender        string `json:"gender" binding:"required"`
	Email         string `json:"email" binding:"required"`
	GuardianEmail string `json:"guardianEmail" binding:"required"`
	GuardianPhone string `json:"guardianPhone" binding:"required"`
	Password      string `json:"password" binding:"required"`
}
