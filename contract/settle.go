package main

import "trashmarket-otc/sdk"

//
// Settlement Engine. Exactly three transitions exist:
//
//	Open -> Filled            (taker pays counter-asset, takes escrow)
//	Open -> Cancelled         (maker backs out before any fill)
//	Open -> ExpiredReclaimed  (maker recovers funds after expiry)
//
// Each runs as one atomic contract call; the chain serializes calls
// touching the same order, so the first sequenced transition wins and
// every later one fails in loadOpenOrder with AlreadyFinalized.
//

// payCounterAsset moves the taker's side of the swap straight to the
// maker. The two legs are asymmetric by construction: whichever asset the
// maker locked, the taker pays the other one, same amount (the pair is
// the native coin and its wrapped form, so settlement is 1:1).
func payCounterAsset(chain SDKInterface, o *Order, taker string) {
	switch o.Direction {
	case AtoB:
		// maker locked wrapped, taker pays native
		requireNativeIntent(chain, o.Amount)
		chain.HiveDraw(int64(o.Amount), sdk.AssetHive)
		chain.HiveTransfer(sdk.Address(o.Maker), int64(o.Amount), sdk.AssetHive)
	case BtoA:
		// maker locked native, taker pays wrapped
		debitToken(chain, taker, o.Amount)
		creditToken(chain, o.Maker, o.Amount)
	default:
		chain.Abort("invalid direction")
	}
}

// fillOrderImpl executes Open -> Filled. If any step aborts (missing
// intent, short balance) the host rolls back the whole call and the order
// stays Open with custody intact.
func fillOrderImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	addr := nextField(&in)
	require(in == "", "too many arguments", chain)

	o := loadOpenOrder(chain, addr)
	require(currentHeight(chain) <= o.Expiration, errInvalidExpiration, chain)

	taker := sender(chain)
	require(taker != o.Maker, errUnauthorized, chain)

	payCounterAsset(chain, o, taker)
	releaseEscrow(chain, o, taker)
	finalizeOrder(chain, o, Filled)

	EmitOrderFilled(chain, addr, taker)
	return nil
}

// refundMaker is the shared fund flow of Cancel and Reclaim.
func refundMaker(chain SDKInterface, o *Order, terminal OrderStatus) {
	releaseEscrow(chain, o, o.Maker)
	finalizeOrder(chain, o, terminal)
}

// cancelOrderImpl executes Open -> Cancelled. No expiry gate: a maker may
// cancel at any time while open, racing a potential filler; the loser of
// that race sees AlreadyFinalized.
func cancelOrderImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	addr := nextField(&in)
	require(in == "", "too many arguments", chain)

	o := loadOpenOrder(chain, addr)
	require(sender(chain) == o.Maker, errUnauthorized, chain)

	refundMaker(chain, o, Cancelled)

	EmitOrderCancelled(chain, addr, o.Maker)
	return nil
}

// reclaimOrderImpl executes Open -> ExpiredReclaimed. Expiry is checked
// lazily here instead of by a sweeper, keeping the protocol purely
// request-driven.
func reclaimOrderImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	addr := nextField(&in)
	require(in == "", "too many arguments", chain)

	o := loadOpenOrder(chain, addr)
	require(sender(chain) == o.Maker, errUnauthorized, chain)
	require(currentHeight(chain) > o.Expiration, errNotYetExpired, chain)

	refundMaker(chain, o, ExpiredReclaimed)

	EmitOrderReclaimed(chain, addr, o.Maker)
	return nil
}
