package importer

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionPreview is used to preview parsed statement lines before they
// are imported, to allow for editing and duplicate review.
type TransactionPreview struct {
	Transaction models.CardTransaction `json:"transaction"`

	// MerchantRaw is the merchant string exactly as it appeared in the
	// statement, before match rules were applied.
	MerchantRaw string `json:"merchantRaw" example:"ｾﾌﾞﾝ-イレブン 渋谷店"`

	DuplicateTransactionIDs []uuid.UUID `json:"duplicateTransactionIds"` // IDs of already imported transactions with the same fingerprint
	MatchRuleID             uuid.UUID   `json:"matchRuleId" example:"042d101d-f1de-4403-9295-59dc0ea58677"`
}
