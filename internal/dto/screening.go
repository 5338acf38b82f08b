package dto

import "resumewise-backend/internal/models"

// ScreeningRequest is the JSON body variant of the screening endpoint.
// File uploads use the multipart form fields "resume" and "jobDescription".
type ScreeningRequest struct {
	ResumeText         string `json:"resumeText"`
	JobDescriptionText string `json:"jobDescriptionText"`
}

// ScreeningHistoryItem is one stored screening in the history listing
type ScreeningHistoryItem struct {
	ID        string                 `json:"id"`
	Result    models.ScreeningResult `json:"result"`
	CreatedAt string                 `json:"created_at"`
}

// ScreeningHistoryResponse lists a user's past screenings, newest first
type ScreeningHistoryResponse struct {
	Screenings []ScreeningHistoryItem `json:"screenings"`
}
