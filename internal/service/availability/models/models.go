package models

import (
	"time"

	"github.com/m04kA/GCA-LessonService/internal/domain"
)

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"` // "09:00"
	EndTime   string  `json:"endTime"`   // "11:00"
	Timezone  *string `json:"timezone,omitempty"`
}

// UpdateWindowRequest запрос на обновление окна доступности
type UpdateWindowRequest struct {
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Timezone  *string `json:"timezone,omitempty"`
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID        int64     `json:"id"`
	CoachID   int64     `json:"coachId"`
	DayOfWeek int       `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Timezone  *string   `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Availabilities []WindowResponse `json:"availabilities"`
}

// Методы конвертации

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:        w.ID,
		CoachID:   w.CoachID,
		DayOfWeek: w.DayOfWeek,
		StartTime: w.StartTime.String(),
		EndTime:   w.EndTime.String(),
		Timezone:  w.Timezone,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	if windows == nil {
		return &WindowListResponse{
			Availabilities: []WindowResponse{},
		}
	}

	resp := &WindowListResponse{
		Availabilities: make([]WindowResponse, len(windows)),
	}

	for i, window := range windows {
		if windowResp := FromDomainWindow(window); windowResp != nil {
			resp.Availabilities[i] = *windowResp
		}
	}

	return resp
}
