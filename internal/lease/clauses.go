package lease

import (
	"coridor/internal/utils"
	"coridor/pkg/types"
)

// Pre-authored clause catalog. Selection is deterministic text assembly:
// no clause text is ever generated, only picked.

const (
	clauseSolidarityNone = `Le présent bail est consenti à un locataire unique. ` +
		`Aucune clause de solidarité n'est applicable.`

	clauseSolidarityStandard = `Les locataires sont tenus solidairement et indivisiblement ` +
		`au paiement du loyer, des charges et de toutes sommes dues au titre du présent bail. ` +
		`Le bailleur pourra réclamer à l'un quelconque des locataires la totalité des sommes dues.`

	clauseSolidarityColocation = `Les colocataires sont tenus solidairement et indivisiblement ` +
		`au paiement du loyer, des charges et de toutes sommes dues au titre du présent bail. ` +
		`En cas de congé délivré par l'un des colocataires, sa solidarité et celle de sa caution ` +
		`prennent fin au plus tard à l'expiration d'un délai de six mois après la date d'effet du congé, ` +
		`ou dès qu'un nouveau colocataire le remplace au bail.`

	clauseTerminationUnfurnished = `Le locataire peut résilier le bail à tout moment moyennant ` +
		`un préavis de trois mois, réduit à un mois en zone tendue ou dans les cas prévus par ` +
		`l'article 15 de la loi du 6 juillet 1989. Le bailleur ne peut donner congé que pour ` +
		`l'échéance du bail, avec un préavis de six mois et pour un motif légitime.`

	clauseTerminationFurnished = `Le locataire peut résilier le bail à tout moment moyennant ` +
		`un préavis d'un mois. Le bailleur ne peut donner congé que pour l'échéance du bail, ` +
		`avec un préavis de trois mois et pour un motif légitime et sérieux.`

	clauseTerminationStudent = `Le bail est conclu pour une durée de neuf mois et prend fin ` +
		`de plein droit à son terme, sans reconduction tacite. Le locataire peut résilier à ` +
		`tout moment moyennant un préavis d'un mois.`

	clauseTerminationMobility = `Le bail mobilité prend fin de plein droit à son terme, sans ` +
		`reconduction tacite. Le locataire peut résilier à tout moment moyennant un préavis ` +
		`d'un mois. Le bailleur ne peut pas résilier le bail avant son terme.`

	clauseResolutory = `Le présent bail sera résilié de plein droit, deux mois après un ` +
		`commandement de payer demeuré infructueux, en cas de défaut de paiement du loyer ou ` +
		`des charges, de non-versement du dépôt de garantie, de défaut d'assurance du locataire ` +
		`ou de troubles de voisinage constatés par une décision de justice.`

	clauseSubletting = `La sous-location, totale ou partielle, est interdite sauf accord écrit ` +
		`et préalable du bailleur, portant à la fois sur le principe de la sous-location et sur ` +
		`le montant du loyer. Le prix au mètre carré ne peut excéder celui payé par le locataire principal.`

	clauseInsurance = `Le locataire est tenu de s'assurer contre les risques locatifs (incendie, ` +
		`dégât des eaux, explosion) et de justifier de cette assurance à la remise des clés, puis ` +
		`chaque année à la demande du bailleur. À défaut, le bailleur peut souscrire une assurance ` +
		`pour le compte du locataire, récupérable par douzième à chaque paiement du loyer.`

	clausePreemption = `En cas de vente du logement, le locataire bénéficie d'un droit de ` +
		`préemption dans les conditions des articles 15-II de la loi du 6 juillet 1989 et 10 de ` +
		`la loi du 31 décembre 1975. Toute offre de vente lui sera notifiée en priorité.`
)

var terminationByTemplate = map[types.LeaseTemplate]string{
	types.LeaseTemplateUnfurnishedStandard: clauseTerminationUnfurnished,
	types.LeaseTemplateFurnishedStandard:   clauseTerminationFurnished,
	types.LeaseTemplateStudent:             clauseTerminationStudent,
	types.LeaseTemplateMobility:            clauseTerminationMobility,
}

// SelectClauses picks clause texts for a classified situation. GROUP with
// solidarity gets the colocation variant, which adds the six-month
// post-departure solidarity tail-off. The preemption clause only exists for
// the two standard templates: student and mobility leases carry none.
func SelectClauses(template types.LeaseTemplate, solidarity bool, composition types.Composition) types.LeaseClauses {
	clauses := types.LeaseClauses{
		Solidarity:  clauseSolidarityNone,
		Termination: terminationByTemplate[template],
		Resolutory:  clauseResolutory,
		Subletting:  clauseSubletting,
		Insurance:   clauseInsurance,
	}

	if solidarity {
		if composition == types.CompositionGroup {
			clauses.Solidarity = clauseSolidarityColocation
		} else {
			clauses.Solidarity = clauseSolidarityStandard
		}
	}

	switch template {
	case types.LeaseTemplateUnfurnishedStandard, types.LeaseTemplateFurnishedStandard:
		clauses.Preemption = utils.StringPtr(clausePreemption)
	}

	return clauses
}
