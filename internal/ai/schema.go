package ai

// screeningSchema is the structured-output schema sent to the Gemini API.
// The response is validated against it provider-side, so the decoded JSON
// maps directly onto models.ScreeningResult.
var screeningSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"match_score_percent": map[string]interface{}{
			"type":        "number",
			"description": "A score from 0 to 100 indicating the percentage fit of the resume to the job description.",
		},
		"fit_summary": map[string]interface{}{
			"type":        "string",
			"description": "A five to six-sentence summary of the candidate's core strengths and weaknesses relative to the job.",
		},
		"critical_missing_skills": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "A list of all MUST-HAVE skills or certifications from the JD that are not present on the resume.",
		},
		"technical_skills_matched": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "A list of all specific technical skills (e.g., Python, AWS, React) successfully found and matched on the resume.",
		},
		"soft_skills_matched": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "A list of all specific soft skills (e.g., leadership, communication, problem-solving) successfully found and matched on the resume.",
		},
		"extracted_data": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name":  map[string]interface{}{"type": "string"},
				"email": map[string]interface{}{"type": "string"},
				"total_years_experience": map[string]interface{}{
					"type":        "number",
					"description": "Total relevant years of experience extracted from the resume.",
				},
			},
			"required": []string{"name", "email", "total_years_experience"},
		},
		"skill_breakdown": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"technical_match_count": map[string]interface{}{"type": "number"},
				"soft_skill_match_count": map[string]interface{}{"type": "number"},
			},
			"required": []string{"technical_match_count", "soft_skill_match_count"},
		},
	},
	"required": []string{
		"match_score_percent",
		"fit_summary",
		"critical_missing_skills",
		"technical_skills_matched",
		"soft_skills_matched",
		"extracted_data",
		"skill_breakdown",
	},
}
