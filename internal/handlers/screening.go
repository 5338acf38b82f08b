package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumewise-backend/internal/ai"
	"resumewise-backend/internal/document"
	"resumewise-backend/internal/dto"
	"resumewise-backend/internal/middleware"
	"resumewise-backend/internal/models"
	"resumewise-backend/internal/repository"
	"resumewise-backend/internal/utils"
)

// maxUploadSize caps the multipart form kept in memory (resumes are small)
const maxUploadSize = 10 << 20 // 10 MiB

// Screener produces a screening result for a resume / job description pair
type Screener interface {
	Screen(ctx context.Context, resumeText, jobDescriptionText string) (*models.ScreeningResult, error)
}

// ScreeningHandler handles resume screening HTTP requests
type ScreeningHandler struct {
	screener   Screener
	screenings repository.ScreeningRepository
	logger     *zap.Logger
}

// NewScreeningHandler creates a new ScreeningHandler instance
func NewScreeningHandler(screener Screener, screenings repository.ScreeningRepository, logger *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{screener: screener, screenings: screenings, logger: logger}
}

// Screen analyzes a resume against a job description
// @Summary Screen a candidate
// @Description Compare a resume with a job description and return an AI match assessment. Accepts multipart uploads (resume, jobDescription) or text fields (resumeText, jobDescriptionText), or a JSON body with the text fields.
// @Tags screening
// @Accept mpfd
// @Accept json
// @Produce json
// @Param resume formData file false "Resume file (PDF, DOCX, or TXT)"
// @Param jobDescription formData file false "Job description file (PDF, DOCX, or TXT)"
// @Param resumeText formData string false "Resume as plain text"
// @Param jobDescriptionText formData string false "Job description as plain text"
// @Success 200 {object} models.ScreeningResult "Screening analysis"
// @Failure 400 {object} dto.ErrorResponse "Missing or unsupported input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "AI provider unavailable"
// @Router /api/screen [post]
func (h *ScreeningHandler) Screen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	resumeText, jobDescriptionText, err := h.readInputs(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if strings.TrimSpace(resumeText) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing input", "Missing resume input (file or text).")
		return
	}
	if strings.TrimSpace(jobDescriptionText) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing input", "Missing job description input (file or text).")
		return
	}

	result, err := h.screener.Screen(r.Context(), resumeText, jobDescriptionText)
	if err != nil {
		if errors.Is(err, ai.ErrExhausted) {
			h.logger.Error("AI provider exhausted retries", zap.Error(err))
			utils.WriteErrorResponse(w, http.StatusBadGateway, "AI provider unavailable",
				"The screening service is temporarily unavailable. Please try again later.")
			return
		}
		h.logger.Error("screening failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Screening failed",
			"Internal server error during screening process.")
		return
	}

	screening := &models.Screening{
		ID:                 uuid.New(),
		UserID:             userID,
		ResumeText:         resumeText,
		JobDescriptionText: jobDescriptionText,
		Result:             *result,
		CreatedAt:          time.Now(),
	}
	if err := h.screenings.Create(r.Context(), screening); err != nil {
		// The analysis succeeded; a failed save should not cost the user
		// the result they paid an AI call for.
		h.logger.Error("failed to persist screening", zap.Error(err))
	}

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// History lists the user's stored screenings
// @Summary List past screenings
// @Description Return the authenticated user's stored screening results, newest first
// @Tags screening
// @Produce json
// @Success 200 {object} dto.ScreeningHistoryResponse "Stored screenings"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/screenings [get]
func (h *ScreeningHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	screenings, err := h.screenings.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list screenings", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load screenings", "Database error")
		return
	}

	resp := dto.ScreeningHistoryResponse{Screenings: []dto.ScreeningHistoryItem{}}
	for _, s := range screenings {
		resp.Screenings = append(resp.Screenings, dto.ScreeningHistoryItem{
			ID:        s.ID.String(),
			Result:    s.Result,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// readInputs pulls the resume and job description text out of the request.
// Text fields win over file uploads for the same input.
func (h *ScreeningHandler) readInputs(r *http.Request) (string, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var req dto.ScreeningRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", errors.New("invalid JSON body")
		}
		return req.ResumeText, req.JobDescriptionText, nil
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", "", errors.New("expected multipart form or JSON body")
	}

	resumeText := r.FormValue("resumeText")
	jobDescriptionText := r.FormValue("jobDescriptionText")

	if resumeText == "" {
		text, err := h.extractFormFile(r, "resume")
		if err != nil {
			return "", "", err
		}
		resumeText = text
	}
	if jobDescriptionText == "" {
		text, err := h.extractFormFile(r, "jobDescription")
		if err != nil {
			return "", "", err
		}
		jobDescriptionText = text
	}

	return resumeText, jobDescriptionText, nil
}

// extractFormFile reads the named upload, if present, and extracts its text
func (h *ScreeningHandler) extractFormFile(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	text, err := document.Extract(data, fileContentType(header), header.Filename)
	if err != nil {
		return "", err
	}
	return text, nil
}

func fileContentType(header *multipart.FileHeader) string {
	if header == nil {
		return ""
	}
	return header.Header.Get("Content-Type")
}
