package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rashedkhan/hisab/model"
)

type contextKey string

const userContextKey contextKey = "user"

const tokenLifetime = 30 * 24 * time.Hour

func (a *App) jwtVerify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondWithError(w, http.StatusUnauthorized, "কোন টোকেন পাওয়া যায়নি, লগইন করুন")
			return
		}

		claims := &model.UserToken{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(token *jwt.Token) (interface{}, error) {
			return a.JWTSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "অথরাইজেশন ব্যর্থ হয়েছে, টোকেন সঠিক নয়")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(r *http.Request) *model.UserToken {
	claims, _ := r.Context().Value(userContextKey).(*model.UserToken)
	return claims
}

func (a *App) generateToken(user *model.User) (string, error) {
	claims := &model.UserToken{
		UserID:  user.ID,
		Phone:   user.Phone,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.JWTSecret)
}

func (a *App) register(w http.ResponseWriter, r *http.Request) {
	user := &model.User{}
	if err := json.NewDecoder(r.Body).Decode(user); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(user); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	user.Password = string(hash)
	user.IsAdmin = false

	user, err = a.Users.Create(user)
	if err != nil {
		if err == model.ErrDuplicatePhone {
			respondWithError(w, http.StatusBadRequest, "এই নম্বর দিয়ে ইতিমধ্যেই অ্যাকাউন্ট খোলা হয়েছে")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := a.generateToken(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"token": token,
	})
}

func (a *App) login(w http.ResponseWriter, r *http.Request) {
	credentials := &model.UserLogin{}
	if err := json.NewDecoder(r.Body).Decode(credentials); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(credentials); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	user, err := a.Users.FindByPhone(credentials.Phone)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "ভুল মোবাইল নম্বর অথবা পাসওয়ার্ড")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "ভুল মোবাইল নম্বর অথবা পাসওয়ার্ড")
		return
	}

	token, err := a.generateToken(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"token": token,
	})
}

func (a *App) getProfile(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	user, err := a.Users.FindByID(claims.UserID)
	if err != nil {
		if err == model.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "ইউজার পাওয়া যায়নি")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	user.Password = ""
	respondWithJSON(w, http.StatusOK, user)
}

func (a *App) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := userFromContext(r)

	update := &model.ProfileUpdate{}
	if err := json.NewDecoder(r.Body).Decode(update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.Validator.Struct(update); err != nil {
		a.respondWithValidationError(w, err)
		return
	}

	user, err := a.Users.FindByID(claims.UserID)
	if err != nil {
		if err == model.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "ইউজার পাওয়া যায়নি")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		user.Password = string(hash)
	}

	if err := a.Users.Update(user); err != nil {
		if err == model.ErrDuplicatePhone {
			respondWithError(w, http.StatusBadRequest, "এই নম্বর দিয়ে ইতিমধ্যেই অ্যাকাউন্ট খোলা হয়েছে")
			return
		}
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := a.generateToken(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"token": token,
	})
}
