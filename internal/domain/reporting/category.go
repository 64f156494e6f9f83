package reporting

// CostType classifies a raw cost record by the kind of spend it represents.
// Unknown tags coming out of the store are preserved as-is and fall into the
// Operating category.
type CostType string

const (
	CostTypeExternalService CostType = "EXTERNAL_SERVICE" // subcontracted project work
	CostTypeInfrastructure  CostType = "INFRASTRUCTURE"   // hosting and tooling passed through to a project
	CostTypeWage            CostType = "WAGE"
	CostTypeReimbursement   CostType = "REIMBURSEMENT" // employee expense reimbursements
	CostTypeTraining        CostType = "TRAINING"
	CostTypeProperty        CostType = "PROPERTY" // rent, utilities, facilities
	CostTypeOther           CostType = "OTHER"
)

// IsValid checks if the cost type is one of the recognized tags
func (t CostType) IsValid() bool {
	switch t {
	case CostTypeExternalService, CostTypeInfrastructure, CostTypeWage,
		CostTypeReimbursement, CostTypeTraining, CostTypeProperty, CostTypeOther:
		return true
	}
	return false
}

// String returns the string representation of the cost type
func (t CostType) String() string {
	return string(t)
}

// isProjectBillable reports whether the tag represents spend that can be
// attributed directly to a client engagement
func (t CostType) isProjectBillable() bool {
	return t == CostTypeExternalService || t == CostTypeInfrastructure
}

// isPersonnel reports whether the tag represents people cost
func (t CostType) isPersonnel() bool {
	return t == CostTypeWage || t == CostTypeReimbursement || t == CostTypeTraining
}

// CostCategory is the income-statement line a cost contributes to
type CostCategory string

const (
	CategoryDirect    CostCategory = "DIRECT"
	CategoryPersonnel CostCategory = "PERSONNEL"
	CategoryOperating CostCategory = "OPERATING"
)

// String returns the string representation of the category
func (c CostCategory) String() string {
	return string(c)
}

// ResolveCostCategory maps a cost record's type tag and its optional project
// association to exactly one category. The function is total: any tag,
// recognized or not, resolves. A project-billable tag without a project
// association is deliberately not Direct; nothing ties it to an engagement.
func ResolveCostCategory(costType CostType, hasProject bool) CostCategory {
	switch {
	case hasProject && costType.isProjectBillable():
		return CategoryDirect
	case costType.isPersonnel():
		return CategoryPersonnel
	default:
		return CategoryOperating
	}
}
