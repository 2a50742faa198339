package handlers

import (
	"context"
	"net/http"
	"time"

	"perfmonitor/models"
	service "perfmonitor/services"
	"perfmonitor/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectHandler struct {
	service service.ProjectService
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.CreateProjectInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	project, err := h.service.Create(ctx, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project created successfully", project, http.StatusCreated)
}

func (h *ProjectHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	projects, err := h.service.FindAll(ctx)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Projects retrieved successfully", projects, http.StatusOK)
}

func (h *ProjectHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	project, err := h.service.FindOne(ctx, id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project retrieved successfully", project, http.StatusOK)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateProjectInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	project, err := h.service.Update(ctx, id, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Project updated successfully", project, http.StatusOK)
}

func (h *ProjectHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Remove(ctx, id); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input models.CreateMilestoneInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	milestone, err := h.service.CreateMilestone(ctx, projectID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Milestone created successfully", milestone, http.StatusCreated)
}

func (h *ProjectHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := primitive.ObjectIDFromHex(r.PathValue("milestoneId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid milestone ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateMilestoneInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	milestone, err := h.service.UpdateMilestone(ctx, milestoneID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Milestone updated successfully", milestone, http.StatusOK)
}

func (h *ProjectHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input models.CreateCommentInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	comment, err := h.service.CreateComment(ctx, projectID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Comment created successfully", comment, http.StatusCreated)
}

func (h *ProjectHandler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input models.CreateProjectNoteInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	challenge, err := h.service.CreateChallenge(ctx, projectID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Challenge created successfully", challenge, http.StatusCreated)
}

func (h *ProjectHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input models.CreateProjectNoteInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	recommendation, err := h.service.CreateRecommendation(ctx, projectID, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Recommendation created successfully", recommendation, http.StatusCreated)
}
