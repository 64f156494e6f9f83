package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCostCategory(t *testing.T) {
	t.Run("billable cost with project is direct", func(t *testing.T) {
		assert.Equal(t, CategoryDirect, ResolveCostCategory(CostTypeExternalService, true))
		assert.Equal(t, CategoryDirect, ResolveCostCategory(CostTypeInfrastructure, true))
	})

	t.Run("billable cost without project falls through to operating", func(t *testing.T) {
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostTypeExternalService, false))
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostTypeInfrastructure, false))
	})

	t.Run("personnel types resolve to personnel regardless of project", func(t *testing.T) {
		for _, ct := range []CostType{CostTypeWage, CostTypeReimbursement, CostTypeTraining} {
			assert.Equal(t, CategoryPersonnel, ResolveCostCategory(ct, false), ct)
			assert.Equal(t, CategoryPersonnel, ResolveCostCategory(ct, true), ct)
		}
	})

	t.Run("remaining types default to operating", func(t *testing.T) {
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostTypeProperty, false))
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostTypeProperty, true))
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostTypeOther, false))
	})

	t.Run("unknown type still yields a category", func(t *testing.T) {
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostType("SOMETHING_NEW"), true))
		assert.Equal(t, CategoryOperating, ResolveCostCategory(CostType(""), false))
	})
}

func TestCostTypeIsValid(t *testing.T) {
	for _, ct := range []CostType{
		CostTypeExternalService, CostTypeInfrastructure, CostTypeWage,
		CostTypeReimbursement, CostTypeTraining, CostTypeProperty, CostTypeOther,
	} {
		assert.True(t, ct.IsValid(), ct)
	}
	assert.False(t, CostType("BOGUS").IsValid())
}
