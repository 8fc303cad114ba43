package handler

import (
	"net/http"
	"strconv"

	"github.com/BTulkas/Foster-Finder/internal/repository"
	"github.com/BTulkas/Foster-Finder/internal/service"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	volunteerService *service.VolunteerService
	clinicService    *service.ClinicService
}

func NewVolunteerHandler(volunteerService *service.VolunteerService, clinicService *service.ClinicService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
		clinicService:    clinicService,
	}
}

type AddVolunteerRequest struct {
	FirstName string       `json:"first_name" binding:"required"`
	LastName  string       `json:"last_name" binding:"required"`
	Areas     []string     `json:"areas" binding:"required"`
	Species   []string     `json:"species" binding:"required"`
	Phone1    PhoneRequest `json:"phone1"`
	Phone2    PhoneRequest `json:"phone2"`
}

type EditVolunteerRequest struct {
	FirstName   string       `json:"first_name" binding:"required"`
	LastName    string       `json:"last_name" binding:"required"`
	Notes       string       `json:"notes"`
	Active      bool         `json:"active"`
	BlackListed bool         `json:"black_listed"`
	Areas       []string     `json:"areas" binding:"required"`
	Species     []string     `json:"species" binding:"required"`
	Phone1      PhoneRequest `json:"phone1"`
	Phone2      PhoneRequest `json:"phone2"`
}

// ListNext returns one page of the contact rotation: the least-recently
// contacted volunteer matching the filters. Filters are echoed back so the
// client can round-trip them through next/prev links.
func (h *VolunteerHandler) ListNext(c *gin.Context) {
	clinicID, _ := c.Get("clinicID")

	clinic, err := h.clinicService.GetProfile(clinicID.(uint))
	if err != nil {
		respondError(c, err, "Failed to load clinic")
		return
	}

	page := parsePage(c)
	areas := c.QueryArray("areas")
	species := c.QueryArray("species")

	result, err := h.volunteerService.ListRotation(clinic, areas, species, page)
	if err != nil {
		respondError(c, err, "Failed to fetch volunteers")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"volunteers": result.Items,
		"page":       result.Number,
		"next":       result.Next,
		"prev":       result.Prev,
		"areas":      result.Areas,
		"species":    result.Species,
	})
}

// Search looks volunteers up by exact phone number first, falling back to a
// case-insensitive name match
func (h *VolunteerHandler) Search(c *gin.Context) {
	page := parsePage(c)

	result, err := h.volunteerService.SearchVolunteers(
		c.Query("first_name"),
		c.Query("last_name"),
		c.Query("dial_code"),
		c.Query("number"),
		page,
	)
	if err != nil {
		respondError(c, err, "Failed to search volunteers")
		return
	}

	utils.SuccessResponse(c, pageResponse("volunteers", result))
}

// Get retrieves a single volunteer
func (h *VolunteerHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid volunteer ID")
		return
	}

	volunteer, err := h.volunteerService.GetVolunteer(id)
	if err != nil {
		respondError(c, err, "Failed to fetch volunteer")
		return
	}

	utils.SuccessResponse(c, volunteer)
}

// Create registers a new volunteer
func (h *VolunteerHandler) Create(c *gin.Context) {
	var req AddVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	clinicID, _ := c.Get("clinicID")

	volunteer, err := h.volunteerService.AddVolunteer(service.AddVolunteerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Areas:     req.Areas,
		Species:   req.Species,
		Phone1:    req.Phone1.toInput(),
		Phone2:    req.Phone2.toInput(),
	}, clinicID.(uint))
	if err != nil {
		respondError(c, err, "Failed to create volunteer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Volunteer registered successfully",
		"volunteer": volunteer,
	})
}

// Update edits an existing volunteer
func (h *VolunteerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid volunteer ID")
		return
	}

	var req EditVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	clinicID, _ := c.Get("clinicID")

	volunteer, err := h.volunteerService.EditVolunteer(id, service.EditVolunteerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Notes:       req.Notes,
		Active:      req.Active,
		BlackListed: req.BlackListed,
		Areas:       req.Areas,
		Species:     req.Species,
		Phone1:      req.Phone1.toInput(),
		Phone2:      req.Phone2.toInput(),
	}, clinicID.(uint))
	if err != nil {
		respondError(c, err, "Failed to update volunteer")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Volunteer updated successfully",
		"volunteer": volunteer,
	})
}

// Cycle re-stamps the volunteer's last-contacted time, moving it to the back
// of the rotation. Returns no content on success.
func (h *VolunteerHandler) Cycle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid volunteer ID")
		return
	}

	clinicID, _ := c.Get("clinicID")

	if err := h.volunteerService.Cycle(id, clinicID.(uint)); err != nil {
		respondError(c, err, "Failed to cycle volunteer")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func pageResponse[T any](key string, page *repository.Page[T]) gin.H {
	return gin.H{
		key:    page.Items,
		"page": page.Number,
		"next": page.Next,
		"prev": page.Prev,
	}
}
