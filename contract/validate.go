package main

import (
	"trashmarket-otc/sdk"
)

// ---------- Request Validator ----------

// validateCreate checks amount bounds and the expiration window before any
// funds move. An already-expired order is meaningless and a window beyond
// maxExpiryWindow would let capital sit unreachable for too long.
func validateCreate(amount uint64, dir Direction, expiration, height uint64, chain SDKInterface) {
	require(validDirection(dir), "invalid direction", chain)
	require(amount >= minOrderAmount, errInvalidAmount, chain)
	require(expiration > height, errInvalidExpiration, chain)
	require(expiration-height <= maxExpiryWindow, errInvalidExpiration, chain)
}

// ---------- Transfer Intent Helpers ----------

type TransferAllow struct {
	Limit uint64 // milliunits, parsed exactly from the intent's limit string
	Token sdk.Asset
}

var validAssets = []string{sdk.AssetHive.String(), sdk.AssetHbd.String()}

// isValidAsset checks we only allow expected liquid tokens.
// Prevents random arbitrary symbols, basic safety guard.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// firstTransferAllow scans the call's intents for one transfer.allow
// instruction and returns its parsed token+limit. Nil if missing.
func firstTransferAllow(chain SDKInterface) *TransferAllow {
	for _, intent := range chain.GetEnv().Intents {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !isValidAsset(token) {
				chain.Abort("invalid intent token")
			}
			// fixed-point parse keeps fractional limits exact, no
			// float64 truncation on amounts like 0.029
			limit := parseFixedPoint3(intent.Args["limit"], chain)
			return &TransferAllow{
				Limit: limit,
				Token: sdk.Asset(token),
			}
		}
	}
	return nil
}

// requireNativeIntent gates every native draw: the sender must have signed
// a transfer.allow for hive covering at least amount.
func requireNativeIntent(chain SDKInterface, amount uint64) {
	ta := firstTransferAllow(chain)
	require(ta != nil, "intent missing", chain)
	require(ta.Token == sdk.AssetHive, "wrong intent token", chain)
	require(ta.Limit >= amount, errInsufficientFunds, chain)
}
