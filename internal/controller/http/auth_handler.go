package http

import (
	"net/http"

	"reel-bites/internal/entity"
	"reel-bites/internal/usecase"

	"github.com/gin-gonic/gin"
)

const tokenCookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterUserRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterPartnerRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	ContactName string `json:"contactName" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

type UserAuthResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

type PartnerAuthResponse struct {
	Message     string              `json:"message"`
	FoodPartner *entity.FoodPartner `json:"foodPartner"`
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
}

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Register a user account and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterUserRequest true "Registration data"
// @Success      201  {object}  UserAuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/auth/user/register [post]
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := h.authUseCase.RegisterUser(req.FullName, req.Email, req.Password, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusCreated, UserAuthResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

// LoginUser godoc
// @Summary      Login as user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  UserAuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/user/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := h.authUseCase.LoginUser(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, UserAuthResponse{
		Message: "User logged in successfully",
		User:    user,
	})
}

// LogoutUser godoc
// @Summary      Logout user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/user/logout [get]
func (h *AuthHandler) LogoutUser(c *gin.Context) {
	clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// RegisterFoodPartner godoc
// @Summary      Register a new food partner
// @Description  Register a partner account and set the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterPartnerRequest true "Registration data"
// @Success      201  {object}  PartnerAuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/auth/foodpartner/register [post]
func (h *AuthHandler) RegisterFoodPartner(c *gin.Context) {
	var req RegisterPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	partner, token, err := h.authUseCase.RegisterFoodPartner(
		req.Name, req.ContactName, req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusCreated, PartnerAuthResponse{
		Message:     "Food partner registered successfully",
		FoodPartner: partner,
	})
}

// LoginFoodPartner godoc
// @Summary      Login as food partner
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  PartnerAuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/foodpartner/login [post]
func (h *AuthHandler) LoginFoodPartner(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	partner, token, err := h.authUseCase.LoginFoodPartner(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, PartnerAuthResponse{
		Message:     "Food partner logged in successfully",
		FoodPartner: partner,
	})
}

// LogoutFoodPartner godoc
// @Summary      Logout food partner
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/foodpartner/logout [get]
func (h *AuthHandler) LogoutFoodPartner(c *gin.Context) {
	clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Food partner logged out successfully"})
}
