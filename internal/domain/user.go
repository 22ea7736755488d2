package domain

import "time"

const (
	UserTypeCitizen    = "citizen"
	UserTypeGovernment = "government"
)

type User struct {
	UserID         string    `json:"id" dynamodbav:"user_id"`
	Username       string    `json:"username" dynamodbav:"username"`
	FullName       string    `json:"full_name" dynamodbav:"full_name"`
	Phone          string    `json:"phone" dynamodbav:"phone"`
	Email          *string   `json:"email,omitempty" dynamodbav:"email"`
	AadhaarNumber  *string   `json:"aadhaar_number,omitempty" dynamodbav:"aadhaar_number"`
	PasswordHash   string    `json:"-" dynamodbav:"password_hash"`
	UserType       string    `json:"user_type" dynamodbav:"user_type"` // "citizen" | "government"
	GovernmentRole *string   `json:"government_role,omitempty" dynamodbav:"government_role"`
	Department     *string   `json:"department,omitempty" dynamodbav:"department"`
	LocationID     *string   `json:"location_id,omitempty" dynamodbav:"location_id"`
	Avatar         *string   `json:"avatar,omitempty" dynamodbav:"avatar"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"updated" dynamodbav:"updated_at"`
}

type RegisterRequest struct {
	Username       string  `json:"username" validate:"required"`
	FullName       string  `json:"full_name" validate:"required"`
	Phone          string  `json:"phone" validate:"required,min=10"`
	Password       string  `json:"password" validate:"required,min=6,max=72"`
	UserType       string  `json:"user_type" validate:"omitempty,oneof=citizen government"`
	Email          *string `json:"email" validate:"omitempty,email"`
	AadhaarNumber  *string `json:"aadhaar_number"`
	GovernmentRole *string `json:"government_role"`
	Department     *string `json:"department"`
	LocationID     *string `json:"location_id"`
}

type UpdateUserRequest struct {
	Username   *string `json:"username"`
	FullName   *string `json:"full_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	LocationID *string `json:"location_id"`
	Avatar     *string `json:"avatar"`
}
