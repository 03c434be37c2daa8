package params

import "strings"

// ProjectType selects whether component and example fields are honored.
type ProjectType string

// ProjectType values accepted by the scaffolding tool.
const (
	ProjectStandard ProjectType = "standard"
	ProjectCustom   ProjectType = "custom"
)

// ValidProjectTypes contains all valid project type values.
var ValidProjectTypes = []ProjectType{ProjectStandard, ProjectCustom}

// absentSentinel is what upstream templating renders for "no value".
const absentSentinel = "null"

// EmptyList is the default value of both list fields.
const EmptyList = "[]"

// Parameters describes the desired service scaffold. It is built once from
// flags, environment and an optional params file, and never mutated.
//
// Components and HealthcheckComponents hold the raw JSON-encoded arrays as
// received; each consumer decides how to treat malformed input.
type Parameters struct {
	GeneratorName         string      `json:"generatorName"`
	ProjectName           string      `json:"projectName"`
	ProjectType           ProjectType `json:"projectType"`
	Components            string      `json:"components"`
	HealthcheckComponents string      `json:"healthcheckComponents"`
	Description           string      `json:"description"`
	Author                string      `json:"author"`
	WithExamples          bool        `json:"withExamples"`
	TargetBranch          string      `json:"targetBranch"`
	PRBranch              string      `json:"prBranch"`
	OutputDir             string      `json:"outputDir"`
}

// Present reports whether an optional text field carries a value. Both the
// empty string and the literal text "null" mean the field was not supplied.
func Present(s string) bool {
	return s != "" && s != absentSentinel
}

// IsCustom reports whether component, health-check and example fields apply.
func (p *Parameters) IsCustom() bool {
	return p.ProjectType == ProjectCustom
}

// HasComponents reports whether the components field carries anything other
// than a blank value or the literal "[]". It does not decode the field.
func (p *Parameters) HasComponents() bool {
	return suppliedList(p.Components)
}

// HasHealthcheck is HasComponents for the health-check field.
func (p *Parameters) HasHealthcheck() bool {
	return suppliedList(p.HealthcheckComponents)
}

// suppliedList compares against "[]" exactly; "[ ]" counts as supplied.
func suppliedList(raw string) bool {
	return strings.TrimSpace(raw) != "" && raw != EmptyList
}
