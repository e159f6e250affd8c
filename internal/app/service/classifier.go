package service

import (
	"file_wallet/internal/app/port"
	"file_wallet/internal/domain/entity"
	"file_wallet/internal/infrastructure/configloader"
)

// heuristicNFTClassifier is the default port.NFTClassifier: a token held
// as exactly one unit counts as NFT-like when it also carries a unique
// id, collection metadata, or a small declared max supply.
//
// The single-unit signal is ambiguous: a legitimately fungible token
// someone holds exactly one unit of will be misclassified. Callers with
// better information should inject their own policy.
type heuristicNFTClassifier struct {
	maxSupplyCutoff uint64
}

// NewHeuristicNFTClassifier creates the default classification policy.
func NewHeuristicNFTClassifier(cfg *configloader.Config) port.NFTClassifier {
	return &heuristicNFTClassifier{maxSupplyCutoff: cfg.Translator.NFTMaxSupplyCutoff}
}

// IsNFTLike implements port.NFTClassifier.
func (c *heuristicNFTClassifier) IsNFTLike(token *entity.Bsv20Token) bool {
	if token.All.Confirmed != 1 {
		return false
	}

	hasUniqueID := token.ID != ""
	hasCollection := token.Collection != ""
	isLowSupply := token.Max > 0 && token.Max <= c.maxSupplyCutoff

	return hasUniqueID || hasCollection || isLowSupply
}
