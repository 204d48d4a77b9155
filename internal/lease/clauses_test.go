package lease

import (
	"testing"

	"coridor/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectClausesGroupGetsColocationVariant(t *testing.T) {
	clauses := SelectClauses(types.LeaseTemplateFurnishedStandard, true, types.CompositionGroup)

	assert.Equal(t, clauseSolidarityColocation, clauses.Solidarity)
	assert.Contains(t, clauses.Solidarity, "six mois")
}

func TestSelectClausesCoupleGetsStandardSolidarity(t *testing.T) {
	clauses := SelectClauses(types.LeaseTemplateUnfurnishedStandard, true, types.CompositionCouple)

	assert.Equal(t, clauseSolidarityStandard, clauses.Solidarity)
}

func TestSelectClausesSoloHasNoSolidarity(t *testing.T) {
	clauses := SelectClauses(types.LeaseTemplateFurnishedStandard, false, types.CompositionSolo)

	assert.Equal(t, clauseSolidarityNone, clauses.Solidarity)
}

func TestSelectClausesPreemption(t *testing.T) {
	for _, template := range []types.LeaseTemplate{
		types.LeaseTemplateUnfurnishedStandard,
		types.LeaseTemplateFurnishedStandard,
	} {
		clauses := SelectClauses(template, false, types.CompositionSolo)
		require.NotNil(t, clauses.Preemption, "template %s", template)
	}

	for _, template := range []types.LeaseTemplate{
		types.LeaseTemplateStudent,
		types.LeaseTemplateMobility,
	} {
		clauses := SelectClauses(template, false, types.CompositionSolo)
		assert.Nil(t, clauses.Preemption, "template %s", template)
	}
}

func TestSelectClausesTerminationVariesByTemplate(t *testing.T) {
	unfurnished := SelectClauses(types.LeaseTemplateUnfurnishedStandard, false, types.CompositionSolo)
	mobility := SelectClauses(types.LeaseTemplateMobility, false, types.CompositionSolo)

	assert.NotEqual(t, unfurnished.Termination, mobility.Termination)
	assert.NotEmpty(t, unfurnished.Resolutory)
	assert.NotEmpty(t, unfurnished.Subletting)
	assert.NotEmpty(t, unfurnished.Insurance)
}
