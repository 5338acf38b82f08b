package models

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedData holds the candidate details pulled out of the resume
type ExtractedData struct {
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	TotalYearsExperience float64 `json:"total_years_experience"`
}

// SkillBreakdown counts the matched skills per category
type SkillBreakdown struct {
	TechnicalMatchCount int `json:"technical_match_count"`
	SoftSkillMatchCount int `json:"soft_skill_match_count"`
}

// ScreeningResult is the structured analysis returned by the AI provider
type ScreeningResult struct {
	MatchScorePercent      float64        `json:"match_score_percent"`
	FitSummary             string         `json:"fit_summary"`
	CriticalMissingSkills  []string       `json:"critical_missing_skills"`
	TechnicalSkillsMatched []string       `json:"technical_skills_matched"`
	SoftSkillsMatched      []string       `json:"soft_skills_matched"`
	ExtractedData          ExtractedData  `json:"extracted_data"`
	SkillBreakdown         SkillBreakdown `json:"skill_breakdown"`
}

// Screening is one stored screening run for a user
type Screening struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	UserID             uuid.UUID       `json:"user_id" db:"user_id"`
	ResumeText         string          `json:"-" db:"resume_text"`
	JobDescriptionText string          `json:"-" db:"job_description_text"`
	Result             ScreeningResult `json:"result" db:"result"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
}
