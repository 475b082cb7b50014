// Package importer turns parsed card statements into transactions,
// deduplicating against earlier imports and applying merchant match
// rules.
package importer

import (
	"fmt"
	"strings"

	"github.com/cashplanner/backend/internal/importer/helpers"
	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Fingerprint computes the import hash of a statement line. The hash is
// built from the charge date, the signed amount and the normalized
// merchant so that re-uploading the same statement finds the earlier
// import even when the raw CSV differs in encoding or whitespace.
func Fingerprint(transaction models.CardTransaction, merchantRaw string) string {
	source := fmt.Sprintf("%s|%d|%s",
		transaction.Date.Format("2006-01-02"),
		transaction.AmountYen,
		NormalizeMerchant(merchantRaw),
	)

	return helpers.Sha256String(source)
}

// DuplicateTransactions finds duplicate transactions by their import hash.
// Existing transactions of the same card with the same hash are searched;
// if any exist, their IDs are set in the DuplicateTransactionIDs field.
func DuplicateTransactions(db *gorm.DB, transaction *TransactionPreview) error {
	var duplicates []models.CardTransaction
	err := db.
		Where(models.CardTransaction{
			CardID:     transaction.Transaction.CardID,
			ImportHash: transaction.Transaction.ImportHash,
		}).
		Find(&duplicates).Error
	if err != nil {
		return err
	}

	// When there are no duplicates, we want an empty list, not null
	duplicateIDs := make([]uuid.UUID, 0, len(duplicates))
	for _, duplicate := range duplicates {
		duplicateIDs = append(duplicateIDs, duplicate.ID)
	}
	transaction.DuplicateTransactionIDs = duplicateIDs

	return nil
}

// Match applies the match rules to a transaction preview. Rules have to be
// passed in priority order; the first matching rule wins and renames the
// merchant to its replacement.
func Match(transaction *TransactionPreview, rules []models.MatchRule) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, transaction.MerchantRaw) {
			transaction.Transaction.Merchant = strings.TrimSpace(rule.Replacement)
			transaction.MatchRuleID = rule.ID
			return
		}
	}
}
