package handler

import (
	"net/http"

	"github.com/BTulkas/Foster-Finder/internal/service"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ClinicHandler struct {
	clinicService *service.ClinicService
}

func NewClinicHandler(clinicService *service.ClinicService) *ClinicHandler {
	return &ClinicHandler{
		clinicService: clinicService,
	}
}

type UpdateClinicRequest struct {
	Name            string       `json:"name" binding:"required"`
	Area            string       `json:"area" binding:"omitempty"`
	MainNumber      PhoneRequest `json:"main_number"`
	EmergencyNumber PhoneRequest `json:"emergency_number"`
}

// Me returns the authenticated clinic's profile
func (h *ClinicHandler) Me(c *gin.Context) {
	clinicID, _ := c.Get("clinicID")

	clinic, err := h.clinicService.GetProfile(clinicID.(uint))
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}

	utils.SuccessResponse(c, clinic)
}

// UpdateMe edits the authenticated clinic's profile and phone numbers
func (h *ClinicHandler) UpdateMe(c *gin.Context) {
	var req UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	clinicID, _ := c.Get("clinicID")

	clinic, err := h.clinicService.UpdateProfile(clinicID.(uint), service.UpdateClinicInput{
		Name:            req.Name,
		Area:            req.Area,
		MainNumber:      req.MainNumber.toInput(),
		EmergencyNumber: req.EmergencyNumber.toInput(),
	})
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Profile updated successfully",
		"clinic":  clinic,
	})
}

// Search looks clinics up by exact phone number first, falling back to a
// case-insensitive name/email match. Admin only.
func (h *ClinicHandler) Search(c *gin.Context) {
	page := parsePage(c)

	result, err := h.clinicService.SearchClinics(
		c.Query("name"),
		c.Query("email"),
		c.Query("dial_code"),
		c.Query("number"),
		page,
	)
	if err != nil {
		respondError(c, err, "Failed to search clinics")
		return
	}

	utils.SuccessResponse(c, pageResponse("clinics", result))
}
