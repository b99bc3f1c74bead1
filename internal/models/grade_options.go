package models

// GradeOption is one selectable grade for a grading service
type GradeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var standardGradeOptions = []GradeOption{
	{"10", "10 (Gem Mint)"},
	{"9.5", "9.5 (Mint+)"},
	{"9", "9 (Mint)"},
	{"8.5", "8.5 (NM-MT+)"},
	{"8", "8 (NM-MT)"},
	{"7.5", "7.5 (NM+)"},
	{"7", "7 (NM)"},
	{"6.5", "6.5 (EX-MT+)"},
	{"6", "6 (EX-MT)"},
	{"5.5", "5.5 (EX+)"},
	{"5", "5 (EX)"},
	{"4", "4 (VG-EX)"},
	{"3", "3 (VG)"},
	{"2", "2 (Good)"},
	{"1", "1 (Poor-Fair)"},
}

var ungradedOption = GradeOption{GradeNotApplicable, "N/A (Ungraded)"}

var authenticOption = GradeOption{GradeAuthentic, "A (Authentic)"}

// Services that also certify autographs as authentic without a numeric grade
var authenticatingServices = map[string]bool{
	GradingServicePSA: true,
	GradingServiceSGC: true,
	GradingServiceJSA: true,
}

// GradeOptionsFor lists the grades selectable for a grading service. The
// returned slice is a fresh copy.
func GradeOptionsFor(gradingService string) []GradeOption {
	if gradingService == GradingServiceUngraded {
		return []GradeOption{ungradedOption}
	}

	options := make([]GradeOption, 0, len(standardGradeOptions)+1)
	options = append(options, standardGradeOptions...)
	if authenticatingServices[gradingService] {
		options = append(options, authenticOption)
	}
	return options
}

// IsValidGrade reports whether grade is selectable for gradingService
func IsValidGrade(gradingService, grade string) bool {
	for _, option := range GradeOptionsFor(gradingService) {
		if option.Value == grade {
			return true
		}
	}
	return false
}
