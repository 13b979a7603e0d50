// Package requisition defines the job-requirements record a résumé is
// screened against and loads it from JSON files.
package requisition

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Requisition captures the requirements an organization wants to fill.
type Requisition struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	Location        string   `json:"location"`
}

// Load reads and validates a requisition from a JSON file.
func Load(path string) (*Requisition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requisition file %s: %w", path, err)
	}

	var req Requisition
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse requisition JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Requisition) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid requisition: %w", err)
	}
	return nil
}

// SkillList flattens the skills field into trimmed, non-empty entries. A
// single entry may itself hold a comma-separated list, the way older
// requisition exports stored skills.
func (r *Requisition) SkillList() []string {
	var skills []string
	for _, entry := range r.Skills {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
	}
	return skills
}
