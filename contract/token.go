package main

import "trashmarket-otc/sdk"

// ---------- Wrapped-token ledger ----------
//
// The wrapped token is the contract-tracked form of the native coin,
// minted 1:1 on deposit and burned on withdraw. It is the counter-asset
// of every swap: one side of an order always settles through this ledger,
// the other through the hive balance primitives.

func balanceKey(addr string) string { return "t_bal_" + addr }

// tokenBalance returns addr's wrapped balance, 0 when the slot is empty.
func tokenBalance(chain SDKInterface, addr string) uint64 {
	ptr := chain.StateGetObject(balanceKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr)
}

func writeBalance(chain SDKInterface, addr string, amount uint64) {
	if amount == 0 {
		// empty slots are cleared, not stored as zero
		chain.StateSetObject(balanceKey(addr), "")
		return
	}
	chain.StateSetObject(balanceKey(addr), UInt64ToString(amount))
}

func creditToken(chain SDKInterface, addr string, amount uint64) {
	writeBalance(chain, addr, tokenBalance(chain, addr)+amount)
}

func debitToken(chain SDKInterface, addr string, amount uint64) {
	bal := tokenBalance(chain, addr)
	require(bal >= amount, errInsufficientFunds, chain)
	writeBalance(chain, addr, bal-amount)
}

// depositImpl wraps native coin: draws the intent amount from the sender
// and credits the same amount of wrapped balance.
func depositImpl(payload *string, chain SDKInterface) *string {
	require(*payload == "", "too many arguments", chain)

	ta := firstTransferAllow(chain)
	require(ta != nil, "intent missing", chain)
	require(ta.Token == sdk.AssetHive, "wrong deposit token", chain)
	amount := ta.Limit
	require(amount > 0, errInvalidAmount, chain)

	depositor := sender(chain)
	chain.HiveDraw(int64(amount), sdk.AssetHive)
	creditToken(chain, depositor, amount)

	EmitTokenDeposit(chain, depositor, amount)
	return nil
}

// withdrawImpl unwraps: debits the sender's wrapped balance and pays the
// native coin back out.
func withdrawImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	amount := parseFixedPoint3(nextField(&in), chain)
	require(in == "", "too many arguments", chain)
	require(amount > 0, errInvalidAmount, chain)

	withdrawer := sender(chain)
	debitToken(chain, withdrawer, amount)
	chain.HiveTransfer(sdk.Address(withdrawer), int64(amount), sdk.AssetHive)

	EmitTokenWithdraw(chain, withdrawer, amount)
	return nil
}

// transferImpl moves wrapped balance between accounts.
func transferImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	to := nextField(&in)
	amount := parseFixedPoint3(nextField(&in), chain)
	require(in == "", "too many arguments", chain)
	require(to != "", "recipient missing", chain)
	require(amount > 0, errInvalidAmount, chain)

	from := sender(chain)
	debitToken(chain, from, amount)
	creditToken(chain, to, amount)

	EmitTokenTransfer(chain, from, to, amount)
	return nil
}

// balanceImpl answers the read surface for wallet UIs.
func balanceImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	addr := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(addr != "", "address missing", chain)

	out := UInt64ToString(tokenBalance(chain, addr))
	return &out
}
