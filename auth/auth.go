package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"puntogo/globals"
	"puntogo/kv"
	"puntogo/models"
	"puntogo/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const (
	tokenTTL = 7 * 24 * time.Hour
	userTTL  = 30 * 24 * time.Hour
)

// Handler implements the mock account flow: login fabricates a fixed user
// record and hands out a token so carts and orders can be keyed by user.
// There is deliberately no credential verification behind it.
type Handler struct {
	kv kv.Store
}

func NewHandler(store kv.Store) *Handler {
	return &Handler{kv: store}
}

type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	jwt.RegisteredClaims
}

func userKey(userID string) string {
	return "user:" + userID
}

func generateToken(user models.User) (string, error) {
	claims := Claims{
		Username: user.Name,
		UserID:   user.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}

func (h *Handler) saveUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return h.kv.Set(ctx, userKey(user.UserID), string(data), userTTL)
}

func (h *Handler) loadUser(ctx context.Context, userID string) (models.User, error) {
	raw, err := h.kv.Get(ctx, userKey(userID))
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *Handler) fabricateAndRespond(w http.ResponseWriter, ctx context.Context, user models.User) {
	if err := h.saveUser(ctx, user); err != nil {
		log.Println("auth: save user error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not create session")
		return
	}

	token, err := generateToken(user)
	if err != nil {
		log.Println("auth: token error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not create session")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Login fabricates the demo user for the given email and issues a token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user := models.User{
		UserID:       utils.GetUUID(),
		Name:         "Marlon Pecho",
		Email:        req.Email,
		Phone:        "987654321",
		SavedAddress: "Calle Ficticia 123",
	}
	h.fabricateAndRespond(w, ctx, user)
}

// Register behaves like Login but keeps the submitted name.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	user := models.User{
		UserID: utils.GetUUID(),
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
	}
	h.fabricateAndRespond(w, ctx, user)
}

// Logout discards the current-user record.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.kv.Del(ctx, userKey(userID)); err != nil {
		log.Println("auth: logout error:", err)
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// GetProfile returns the current-user record behind every personalization
// point (saved address, saved phone on checkout).
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.loadUser(ctx, userID)
	if errors.Is(err, kv.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "No active session")
		return
	}
	if err != nil {
		log.Println("auth: load user error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile merges the submitted fields into the stored record.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.loadUser(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active session")
		return
	}

	var updates struct {
		Name         *string `json:"name"`
		Phone        *string `json:"phone"`
		SavedAddress *string `json:"savedAddress"`
		Reference    *string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Phone != nil {
		user.Phone = *updates.Phone
	}
	if updates.SavedAddress != nil {
		user.SavedAddress = *updates.SavedAddress
	}
	if updates.Reference != nil {
		user.Reference = *updates.Reference
	}

	if err := h.saveUser(ctx, user); err != nil {
		log.Println("auth: update user error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}
