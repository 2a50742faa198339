package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"perfmonitor/models"
	service "perfmonitor/services"
	"perfmonitor/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PerformanceHandler struct {
	service service.PerformanceService
}

func NewPerformanceHandler(service service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{
		service: service,
	}
}

func (h *PerformanceHandler) RecordMonthlyPerformance(w http.ResponseWriter, r *http.Request) {
	var input models.RecordDepartmentPerformanceInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := h.service.RecordDepartmentMonthlyPerformance(ctx, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Monthly performance recorded successfully", record, http.StatusCreated)
}

func (h *PerformanceHandler) UpdateMonthlyPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid performance record ID format", http.StatusBadRequest)
		return
	}

	var input models.UpdateDepartmentPerformanceInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := h.service.UpdateDepartmentMonthlyPerformance(ctx, id, &input)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Monthly performance updated successfully", record, http.StatusOK)
}

func (h *PerformanceHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	departmentID, err := primitive.ObjectIDFromHex(r.PathValue("departmentId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid department ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := h.service.GetCurrentDepartmentPerformance(ctx, departmentID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Current performance retrieved successfully", record, http.StatusOK)
}

func (h *PerformanceHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	departmentID, err := primitive.ObjectIDFromHex(r.PathValue("departmentId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid department ID format", http.StatusBadRequest)
		return
	}

	params := r.URL.Query()
	var query models.QueryDepartmentPerformanceInput
	if raw := params.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			utils.HandleMessageResponse(w, "Invalid year filter", http.StatusBadRequest)
			return
		}
		query.Year = year
	}
	if raw := params.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			utils.HandleMessageResponse(w, "Invalid month filter", http.StatusBadRequest)
			return
		}
		query.Month = month
	}
	if raw := params.Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 1 {
			utils.HandleMessageResponse(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := h.service.GetDepartmentPerformanceHistory(ctx, departmentID, query)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Performance history retrieved successfully", records, http.StatusOK)
}

func (h *PerformanceHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	departmentID, err := primitive.ObjectIDFromHex(r.PathValue("departmentId"))
	if err != nil {
		utils.HandleMessageResponse(w, "Invalid department ID format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := h.service.GetDepartmentMonthlySummary(ctx, departmentID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.HandleDataResponse(w, "Monthly summary retrieved successfully", summary, http.StatusOK)
}
