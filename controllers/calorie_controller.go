// controllers/calorie_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/saqi004/calories/models"
	"github.com/saqi004/calories/services"
	"github.com/saqi004/calories/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalorieController struct {
	Svc *services.CalorieService
}

func NewCalorieController(svc *services.CalorieService) *CalorieController {
	return &CalorieController{Svc: svc}
}

type estimateReq struct {
	Gender        string   `json:"gender"`
	WeightKg      *float64 `json:"weight_kg" binding:"required"`
	HeightCm      *float64 `json:"height_cm" binding:"required"`
	AgeYears      *int     `json:"age_years" binding:"required"`
	ActivityLevel string   `json:"activity_level"`
}

// Estimate handles POST /api/v1/calories.
func (cc *CalorieController) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := models.BiometricInput{
		Gender:        services.ParseGender(req.Gender),
		WeightKg:      *req.WeightKg,
		HeightCm:      *req.HeightCm,
		AgeYears:      *req.AgeYears,
		ActivityLevel: services.ParseActivityLevel(req.ActivityLevel),
	}
	if err := services.ValidateRanges(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	est, err := cc.Svc.Estimate(c.Request.Context(), in)
	if err != nil {
		var catErr *utils.InvalidCategoryError
		if errors.As(err, &catErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": catErr.Error(),
				"field": catErr.Field,
				"value": catErr.Value,
			})
			return
		}
		if errors.Is(err, services.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("calories: estimate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": uuid.NewString(), "estimate": est})
}

// ActivityLevels handles GET /api/v1/activity-levels.
func (cc *CalorieController) ActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"activity_levels": cc.Svc.ActivityLevels()})
}
