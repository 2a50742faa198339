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

type OrganizationHandler struct {
	service service.OrganizationService
}

func NewOrganizationHandler(service service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
	}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var org models.Organization
	if err := utils.DecodeAndValidate(w, r, &org); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, &org)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Organization created successfully", created, http.StatusCreated)
}

func (h *OrganizationHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	includeDepartments := r.URL.Query().Get("includeDepartments") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orgs, err := h.service.FindAll(ctx, includeDepartments)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Organizations retrieved successfully", orgs, http.StatusOK)
}

func (h *OrganizationHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	org, err := h.service.FindOne(ctx, code)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Organization retrieved successfully", org, http.StatusOK)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	var input models.UpdateOrganizationInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := h.service.Update(ctx, code, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Organization updated successfully", updated, http.StatusOK)
}

func (h *OrganizationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Remove(ctx, code); err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OrganizationHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var input models.CreateDepartmentInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	department, err := h.service.CreateDepartment(ctx, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Department created successfully", department, http.StatusCreated)
}

func (h *OrganizationHandler) FindOneDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid department ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	department, err := h.service.FindOneDepartment(ctx, id)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Department retrieved successfully", department, http.StatusOK)
}

func (h *OrganizationHandler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid department ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateDepartmentInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	department, err := h.service.UpdateDepartment(ctx, id, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Department updated successfully", department, http.StatusOK)
}

func (h *OrganizationHandler) CreatePriorityArea(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	var input models.CreatePriorityAreaInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	area, err := h.service.CreatePriorityArea(ctx, code, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Priority area created successfully", area, http.StatusCreated)
}

func (h *OrganizationHandler) FindPriorityAreas(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	areas, err := h.service.FindPriorityAreas(ctx, code)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Priority areas retrieved successfully", areas, http.StatusOK)
}
