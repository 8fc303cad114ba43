package handler

import (
	"github.com/BTulkas/Foster-Finder/internal/repository"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the reference lists used to populate forms.
type LookupHandler struct {
	lookupRepo *repository.LookupRepository
}

func NewLookupHandler(lookupRepo *repository.LookupRepository) *LookupHandler {
	return &LookupHandler{
		lookupRepo: lookupRepo,
	}
}

func (h *LookupHandler) Areas(c *gin.Context) {
	areas, err := h.lookupRepo.GetAllAreas()
	if err != nil {
		respondError(c, err, "Failed to fetch areas")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"areas": areas,
		"count": len(areas),
	})
}

func (h *LookupHandler) Species(c *gin.Context) {
	species, err := h.lookupRepo.GetAllSpecies()
	if err != nil {
		respondError(c, err, "Failed to fetch species")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"species": species,
		"count":   len(species),
	})
}
