package models

// Department is the owning academic department of a booking or template.
type Department string

const (
	DepartmentAIML    Department = "AIML"
	DepartmentIT      Department = "IT"
	DepartmentAI      Department = "AI"
	DepartmentCSECore Department = "CSE CORE"
	DepartmentDS      Department = "DS"
)

var departments = map[Department]struct{}{
	DepartmentAIML:    {},
	DepartmentIT:      {},
	DepartmentAI:      {},
	DepartmentCSECore: {},
	DepartmentDS:      {},
}

// Valid reports whether d is one of the known departments.
func (d Department) Valid() bool {
	_, ok := departments[d]
	return ok
}
