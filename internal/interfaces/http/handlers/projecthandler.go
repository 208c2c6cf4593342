package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/application/project/usecases"
	"fractalyx/internal/shared/errors"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC *usecases.CreateProjectUseCase
	getProjectUC    *usecases.GetProjectUseCase
	listProjectsUC  *usecases.ListProjectsUseCase
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC *usecases.CreateProjectUseCase,
	getProjectUC *usecases.GetProjectUseCase,
	listProjectsUC *usecases.ListProjectsUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		getProjectUC:    getProjectUC,
		listProjectsUC:  listProjectsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectCommand{ProjectID: projectID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	result, err := h.listProjectsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
