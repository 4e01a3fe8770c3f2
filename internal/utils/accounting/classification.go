package accounting

import (
	"strings"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// AssetBucket and LiabilityBucket name the balance-sheet sub-sections.
type AssetBucket string

const (
	BucketCurrentAsset AssetBucket = "current"
	BucketFixedAsset   AssetBucket = "fixed"
)

type LiabilityBucket string

const (
	BucketCurrentLiability  LiabilityBucket = "current"
	BucketLongTermLiability LiabilityBucket = "longTerm"
)

// ClassificationRules is the two-tier bucketing strategy: the account's
// explicit category wins; when it is absent the account code is matched
// against prefix tables. The heuristic is data, not code, so deployments
// with different numbering schemes can override it.
type ClassificationRules struct {
	CurrentAssetPrefixes     []string
	CurrentLiabilityPrefixes []string
}

// DefaultClassificationRules matches the default chart's numbering:
// 10xx cash/bank, 11xx receivables, 12xx inventory are current assets;
// 20xx payables and 21xx short-term loans are current liabilities.
func DefaultClassificationRules() ClassificationRules {
	return ClassificationRules{
		CurrentAssetPrefixes:     []string{"10", "11", "12"},
		CurrentLiabilityPrefixes: []string{"20", "21"},
	}
}

func matchesPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

// ClassifyAsset buckets an asset account into current vs fixed.
func (r ClassificationRules) ClassifyAsset(acc domain.Account) AssetBucket {
	switch acc.Category {
	case domain.CategoryCurrentAsset:
		return BucketCurrentAsset
	case domain.CategoryFixedAsset:
		return BucketFixedAsset
	}
	if matchesPrefix(acc.Code, r.CurrentAssetPrefixes) {
		return BucketCurrentAsset
	}
	return BucketFixedAsset
}

// ClassifyLiability buckets a liability account into current vs long-term.
func (r ClassificationRules) ClassifyLiability(acc domain.Account) LiabilityBucket {
	switch acc.Category {
	case domain.CategoryCurrentLiability:
		return BucketCurrentLiability
	case domain.CategoryLongTermLiability:
		return BucketLongTermLiability
	}
	if matchesPrefix(acc.Code, r.CurrentLiabilityPrefixes) {
		return BucketCurrentLiability
	}
	return BucketLongTermLiability
}
