package v1

import (
	"github.com/cashplanner/backend/internal/models"
)

// MatchRuleEditable contains the fields of a match rule that can be set
// by the user.
type MatchRuleEditable struct {
	Priority    uint   `json:"priority" example:"2" default:"0"`
	Match       string `json:"match" example:"Amazon*"`
	Replacement string `json:"replacement" example:"Amazon"`
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		Priority:    editable.Priority,
		Match:       editable.Match,
		Replacement: editable.Replacement,
	}
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []MatchRuleResponse `json:"data"`
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	message := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &message})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
}

func newMatchRule(rule models.MatchRule) MatchRule {
	return MatchRule{
		DefaultModel: rule.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			Priority:    rule.Priority,
			Match:       rule.Match,
			Replacement: rule.Replacement,
		},
	}
}
