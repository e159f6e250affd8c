package service

import (
	"strings"

	"file_wallet/internal/domain/entity"
)

// tickerIcons maps well-known tickers (and file-extension style tickers)
// to display icons.
var tickerIcons = map[string]string{
	// Stocks
	"AAPL":  "🍎",
	"GOOGL": "🔍",
	"TSLA":  "🚗",
	"MSFT":  "💻",
	"AMZN":  "📦",
	"META":  "👥",
	"NVDA":  "🖥️",
	"NFLX":  "🎬",

	// Crypto
	"BTC": "₿",
	"BSV": "💎",
	"ETH": "⟠",

	// Commodities
	"GOLD":   "🥇",
	"SILVER": "🥈",
	"OIL":    "🛢️",

	// Asset categories
	"STOCK":       "📈",
	"CRYPTO":      "🪙",
	"COMMODITY":   "🏭",
	"REAL_ESTATE": "🏠",
	"BOND":        "📋",
	"DERIVATIVE":  "📊",

	// File types as assets
	"JPEG": "🖼️",
	"PNG":  "🖼️",
	"GIF":  "🖼️",
	"MP4":  "🎬",
	"MP3":  "🎵",
	"PDF":  "📄",
	"DOC":  "📝",
	"ZIP":  "📦",
	"JSON": "⚙️",
	"HTML": "🌐",
	"CSS":  "🎨",
	"JS":   "⚡",
	"PY":   "🐍",
	"GO":   "🐹",
	"RUST": "🦀",

	// Fallback categories
	"NFT":   "🎨",
	"TOKEN": "🪙",
	"SHARE": "📈",
	"COIN":  "🪙",
}

// assetTypeIcons are the per-type fallbacks when nothing else matches.
var assetTypeIcons = map[entity.AssetType]string{
	entity.AssetFT:  "🪙",
	entity.AssetNFT: "🎨",
}

// resolveIcon picks a display icon for a ticker. Exact ticker match wins,
// then the extension portion of dotted tickers, then the type fallback.
func resolveIcon(ticker string, assetType entity.AssetType) string {
	upper := strings.ToUpper(ticker)
	if icon, ok := tickerIcons[upper]; ok {
		return icon
	}

	if idx := strings.LastIndex(upper, "."); idx >= 0 && idx < len(upper)-1 {
		if icon, ok := tickerIcons[upper[idx+1:]]; ok {
			return icon
		}
	}

	if icon, ok := assetTypeIcons[assetType]; ok {
		return icon
	}
	return "🪙"
}

// resolveContentTypeIcon picks a display icon for an inscription from its
// declared content type. Unmatched content types fall back to the generic
// art icon.
func resolveContentTypeIcon(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "🖼️"
	case strings.HasPrefix(contentType, "video/"):
		return "🎬"
	case strings.HasPrefix(contentType, "audio/"):
		return "🎵"
	case strings.Contains(contentType, "pdf"):
		return "📄"
	case strings.Contains(contentType, "json"):
		return "⚙️"
	case strings.Contains(contentType, "html"):
		return "🌐"
	default:
		return "🎨"
	}
}
