package model

import "github.com/golang-jwt/jwt/v5"

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name" validate:"required,min=2,max=64"`
	Phone    string `json:"phone" validate:"required,min=11,max=14"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

type UserToken struct {
	UserID  int    `json:"id"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type UserLogin struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdate struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=64"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=11,max=14"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}
