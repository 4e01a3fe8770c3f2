package accounting_test

import (
	"testing"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAsset(t *testing.T) {
	rules := accounting.DefaultClassificationRules()

	t.Run("category wins over code prefix", func(t *testing.T) {
		// 15xx would fall into fixed by prefix, but the explicit category
		// takes precedence.
		acc := domain.Account{Code: "1510", Category: domain.CategoryCurrentAsset}
		assert.Equal(t, accounting.BucketCurrentAsset, rules.ClassifyAsset(acc))
	})

	t.Run("prefix fallback without category", func(t *testing.T) {
		assert.Equal(t, accounting.BucketCurrentAsset,
			rules.ClassifyAsset(domain.Account{Code: "1010"}))
		assert.Equal(t, accounting.BucketCurrentAsset,
			rules.ClassifyAsset(domain.Account{Code: "1200"}))
		assert.Equal(t, accounting.BucketFixedAsset,
			rules.ClassifyAsset(domain.Account{Code: "1510"}))
	})

	t.Run("custom prefixes", func(t *testing.T) {
		custom := accounting.ClassificationRules{CurrentAssetPrefixes: []string{"CA-"}}
		assert.Equal(t, accounting.BucketCurrentAsset,
			custom.ClassifyAsset(domain.Account{Code: "CA-BANK"}))
		assert.Equal(t, accounting.BucketFixedAsset,
			custom.ClassifyAsset(domain.Account{Code: "1010"}))
	})
}

func TestClassifyLiability(t *testing.T) {
	rules := accounting.DefaultClassificationRules()

	t.Run("category wins over code prefix", func(t *testing.T) {
		acc := domain.Account{Code: "2010", Category: domain.CategoryLongTermLiability}
		assert.Equal(t, accounting.BucketLongTermLiability, rules.ClassifyLiability(acc))
	})

	t.Run("prefix fallback without category", func(t *testing.T) {
		assert.Equal(t, accounting.BucketCurrentLiability,
			rules.ClassifyLiability(domain.Account{Code: "2010"}))
		assert.Equal(t, accounting.BucketCurrentLiability,
			rules.ClassifyLiability(domain.Account{Code: "2100"}))
		assert.Equal(t, accounting.BucketLongTermLiability,
			rules.ClassifyLiability(domain.Account{Code: "2500"}))
	})
}
