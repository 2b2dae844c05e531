package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"trashmarket-otc/sdk"
)

// contractSeed namespaces every derived address under this deployment so
// two contracts can never collide on a custody key.
const contractSeed = "trashmarket.otc.v1"

// deriveAddress computes a pure deterministic address from the seed tuple.
// No randomness, no off-chain registry: any party can recompute it.
func deriveAddress(prefix, maker string, amount uint64, dir Direction) string {
	h := sha256.New()
	h.Write([]byte(contractSeed))
	h.Write([]byte{0})
	h.Write([]byte(prefix))
	h.Write([]byte{0})
	h.Write([]byte(maker))
	h.Write([]byte{0})
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], amount)
	h.Write(buf[:])
	h.Write([]byte{byte(dir)})
	return hex.EncodeToString(h.Sum(nil))
}

// deriveOrderAddress yields the order's ledger address (and id).
func deriveOrderAddress(maker string, amount uint64, dir Direction) string {
	return deriveAddress("order", maker, amount, dir)
}

// deriveEscrowAddress yields the token-custody address for AtoB orders.
// A native balance and a token-ledger balance cannot share a slot, so the
// wrapped lock lives under its own derived key.
func deriveEscrowAddress(maker string, amount uint64, dir Direction) string {
	return deriveAddress("escrow", maker, amount, dir)
}

func escrowKey(addr string) string { return "e_" + addr }

// readEscrow returns the custodied token amount at addr, 0 if none.
func readEscrow(chain SDKInterface, addr string) uint64 {
	ptr := chain.StateGetObject(escrowKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr)
}

// openEscrow moves the maker's locked asset into custody.
//
// BtoA draws the native coin into the contract balance (gated by a
// transfer.allow intent; the host aborts the call when the maker cannot
// cover the draw). AtoB debits the maker's wrapped balance and records it
// under the derived escrow address. Fails DuplicateOrder when a custody
// record already exists at that address.
func openEscrow(chain SDKInterface, o *Order) {
	switch o.Direction {
	case AtoB:
		addr := deriveEscrowAddress(o.Maker, o.Amount, o.Direction)
		require(readEscrow(chain, addr) == 0, errDuplicateOrder, chain)
		debitToken(chain, o.Maker, o.Amount)
		chain.StateSetObject(escrowKey(addr), UInt64ToString(o.Amount))
	case BtoA:
		requireNativeIntent(chain, o.Amount)
		chain.HiveDraw(int64(o.Amount), sdk.AssetHive)
	default:
		chain.Abort("invalid direction")
	}
}

// releaseEscrow transfers the full custodied amount to destination and
// destroys the custody record. Only the settlement transitions call this,
// always in the same request that finalizes the order record.
func releaseEscrow(chain SDKInterface, o *Order, destination string) {
	switch o.Direction {
	case AtoB:
		addr := deriveEscrowAddress(o.Maker, o.Amount, o.Direction)
		held := readEscrow(chain, addr)
		// custody holds exactly the locked amount, never more, never less
		require(held == o.Amount, errInsufficientFunds, chain)
		chain.StateSetObject(escrowKey(addr), "")
		creditToken(chain, destination, o.Amount)
	case BtoA:
		chain.HiveTransfer(sdk.Address(destination), int64(o.Amount), sdk.AssetHive)
	default:
		chain.Abort("invalid direction")
	}
}
