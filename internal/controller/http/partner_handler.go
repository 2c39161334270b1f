package http

import (
	"net/http"

	"reel-bites/internal/entity"
	"reel-bites/internal/usecase"
	"reel-bites/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	partnerUseCase usecase.PartnerUseCase
}

func NewPartnerHandler(partnerUseCase usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{
		partnerUseCase: partnerUseCase,
	}
}

type UpdatePartnerRequest struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

type PartnerProfileResponse struct {
	Message     string                     `json:"message"`
	FoodPartner *entity.FoodPartnerProfile `json:"foodPartner"`
}

// GetProfile godoc
// @Summary      Get a food partner profile
// @Description  Returns the partner and all reels they have published
// @Tags         foodpartner
// @Produce      json
// @Param        id path string true "Food partner ID"
// @Success      200  {object}  PartnerProfileResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/foodpartner/{id} [get]
func (h *PartnerHandler) GetProfile(c *gin.Context) {
	partnerID := c.Param("id")

	profile, err := h.partnerUseCase.GetProfile(partnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PartnerProfileResponse{
		Message:     "Food partner fetched successfully",
		FoodPartner: profile,
	})
}

// UpdateProfile godoc
// @Summary      Update a food partner profile
// @Description  Partial update of the authenticated partner's own profile
// @Tags         foodpartner
// @Accept       json
// @Produce      json
// @Param        id path string true "Food partner ID"
// @Param        request body UpdatePartnerRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/foodpartner/{id} [patch]
func (h *PartnerHandler) UpdateProfile(c *gin.Context) {
	partnerID := c.Param("id")
	actorID := c.GetString(middleware.ContextActorID)

	var req UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	partner, err := h.partnerUseCase.UpdateProfile(partnerID, actorID, usecase.PartnerProfileUpdate{
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Food partner updated successfully",
		"foodPartner": partner,
	})
}
