package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pepiapp/citizen_registry_microservice/internal/core/domain"
	"github.com/pepiapp/citizen_registry_microservice/internal/core/ports"
)

type CitizenHandler struct {
	citizenService ports.CitizenService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewCitizenHandler(
	citizenService ports.CitizenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CitizenHandler {
	return &CitizenHandler{
		citizenService: citizenService,
		logger:         logger,
		metrics:        metrics,
	}
}

type CitizenRequest struct {
	FirstName         string `json:"first_name" example:"Jane"`
	LastName          string `json:"last_name" example:"Doe"`
	DateOfBirth       string `json:"date_of_birth" example:"1990-01-01"`
	Nationality       string `json:"nationality" example:"Germany"`
	PassportNumber    string `json:"passport_number" example:"ab1234567"`
	PassportIssueDate string `json:"passport_issue_date" example:"2015-05-05"`
}

func (r *CitizenRequest) toDomain() *domain.Citizen {
	return &domain.Citizen{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		DateOfBirth:       r.DateOfBirth,
		Nationality:       r.Nationality,
		PassportNumber:    r.PassportNumber,
		PassportIssueDate: r.PassportIssueDate,
	}
}

// @Summary List citizens
// @Description Returns all citizen records, most recent first
// @Tags citizens
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Citizen "Citizen records"
// @Failure 401 {object} errorResponse "Not authenticated"
// @Failure 403 {object} errorResponse "Employee access required"
// @Router /api/citizens [get]
func (h *CitizenHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	citizens, err := h.citizenService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to fetch citizens", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching citizens")
		return
	}

	c.JSON(http.StatusOK, citizens)
}

// @Summary Get citizen
// @Description Returns one citizen record by ID
// @Tags citizens
// @Security BearerAuth
// @Produce json
// @Param id path string true "Citizen ID"
// @Success 200 {object} domain.Citizen "Citizen record"
// @Failure 404 {object} errorResponse "Citizen not found"
// @Router /api/citizens/{id} [get]
func (h *CitizenHandler) Get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Citizen not found")
		return
	}

	citizen, err := h.citizenService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCitizenNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Citizen not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Error fetching citizen")
		return
	}

	c.JSON(http.StatusOK, citizen)
}

// @Summary Create citizen
// @Description Creates a citizen record and assigns its unique ID
// @Tags citizens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CitizenRequest true "Citizen data"
// @Success 201 {object} successResponse{data=domain.Citizen} "Citizen created"
// @Failure 400 {object} errorResponse "Validation error or duplicate passport number"
// @Router /api/citizens [post]
func (h *CitizenHandler) Create(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	created, err := h.citizenService.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.writeCitizenError(c, err, "Create")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Citizen created successfully!", created)
}

// @Summary Update citizen
// @Description Replaces a citizen record; the unique ID never changes
// @Tags citizens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Citizen ID"
// @Param request body CitizenRequest true "Citizen data"
// @Success 200 {object} successResponse{data=domain.Citizen} "Citizen updated"
// @Failure 400 {object} errorResponse "Validation error or duplicate passport number"
// @Failure 404 {object} errorResponse "Citizen not found"
// @Router /api/citizens/{id} [put]
func (h *CitizenHandler) Update(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Citizen not found")
		return
	}

	var req CitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.citizenService.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		h.writeCitizenError(c, err, "Update")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Citizen updated successfully!", updated)
}

// @Summary Delete citizen
// @Description Permanently removes a citizen record
// @Tags citizens
// @Security BearerAuth
// @Produce json
// @Param id path string true "Citizen ID"
// @Success 200 {object} successResponse "Citizen deleted"
// @Failure 404 {object} errorResponse "Citizen not found"
// @Router /api/citizens/{id} [delete]
func (h *CitizenHandler) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "Citizen not found")
		return
	}

	if err := h.citizenService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCitizenNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Citizen not found")
			return
		}
		h.logger.Error("Failed to delete citizen", map[string]interface{}{
			"id":    id.String(),
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Citizen deleted successfully!", nil)
}

// @Summary Look up citizen by passport number
// @Description Public search returning a reduced projection without the internal ID
// @Tags citizens
// @Produce json
// @Param passportNumber path string true "Passport number (case-insensitive)"
// @Success 200 {object} successResponse{data=domain.CitizenProfile} "Citizen found"
// @Failure 404 {object} errorResponse "No citizen with that passport number"
// @Router /api/citizens/lookup/{passportNumber} [get]
func (h *CitizenHandler) Lookup(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	profile, err := h.citizenService.LookupByPassport(c.Request.Context(), c.Param("passportNumber"))
	if err != nil {
		if errors.Is(err, domain.ErrCitizenNotFound) {
			newErrorResponse(c, http.StatusNotFound, "No citizen found with that passport number")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Error looking up citizen")
		return
	}

	c.JSON(http.StatusOK, gin.H{"citizen": profile})
}

func (h *CitizenHandler) writeCitizenError(c *gin.Context, err error, method string) {
	switch {
	case domain.IsValidationError(err):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrPassportExists):
		h.logger.Info("Duplicate passport number", map[string]interface{}{
			"method": method,
		})
		newErrorResponse(c, http.StatusBadRequest, "Passport number already exists")
	case errors.Is(err, domain.ErrCitizenNotFound):
		newErrorResponse(c, http.StatusNotFound, "Citizen not found")
	default:
		h.logger.Error("Citizen operation failed", map[string]interface{}{
			"method": method,
			"error":  err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Server error. Please try again.")
	}
}
