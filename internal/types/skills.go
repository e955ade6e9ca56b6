package types

import "sort"

// SkillSet groups skills matched in a document by category. Category slices
// are deduplicated and sorted; AllTechnical is the union of the five
// technical categories (soft skills excluded).
type SkillSet struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	FrameworksLibraries  []string `json:"frameworks_libraries"`
	Databases            []string `json:"databases"`
	CloudPlatforms       []string `json:"cloud_platforms"`
	Tools                []string `json:"tools"`
	SoftSkills           []string `json:"soft_skills"`
	AllTechnical         []string `json:"all_technical"`
}

// TechnicalSet returns the technical skills as a membership set for
// order-insensitive comparison.
func (s SkillSet) TechnicalSet() map[string]bool {
	set := make(map[string]bool, len(s.AllTechnical))
	for _, skill := range s.AllTechnical {
		set[skill] = true
	}
	return set
}

// IntersectTechnical returns the technical skills present in both sets,
// sorted for deterministic output.
func (s SkillSet) IntersectTechnical(other SkillSet) []string {
	otherSet := other.TechnicalSet()
	var common []string
	for _, skill := range s.AllTechnical {
		if otherSet[skill] {
			common = append(common, skill)
		}
	}
	sort.Strings(common)
	return common
}

// DiffTechnical returns the technical skills present in s but absent from
// other, sorted for deterministic output. The operation is directional.
func (s SkillSet) DiffTechnical(other SkillSet) []string {
	otherSet := other.TechnicalSet()
	var missing []string
	for _, skill := range s.AllTechnical {
		if !otherSet[skill] {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}
