package main

// ---------- Order Ledger (binary storage) ----------

// codecVersion increments when storage encoding changes.
// Used to detect incompatible on-chain state.
const codecVersion uint8 = 1

// orderKey constructs the state key for an order record.
// Format: "o_<derivedAddress>"
func orderKey(addr string) string { return "o_" + addr }

// encodeOrder serializes an order into a compact byte slice.
//
// Live layout:
//
//	version | status | maker (u16 len + bytes) | amount | direction | expiration | createdAt
//
// A finalized order is stored as a tombstone holding only
// version | terminal status, so the bulk of the record's storage is
// reclaimed while later callers can still distinguish
// AlreadyFinalized from NotFound.
func encodeOrder(o *Order, chain SDKInterface) []byte {
	out := make([]byte, 0, 4+len(o.Maker)+26)
	out = append(out, codecVersion, byte(o.Status))
	if o.Status != Open {
		return out
	}
	out = appendString16(out, o.Maker, chain)
	out = appendBEU64(out, o.Amount)
	out = append(out, byte(o.Direction))
	out = appendBEU64(out, o.Expiration)
	out = appendBEU64(out, o.CreatedAt)
	return out
}

// decodeOrder reconstructs an order from its stored bytes, ensuring no
// trailing bytes remain. Tombstones decode to a struct carrying only the
// terminal status.
func decodeOrder(addr string, b []byte, chain SDKInterface) *Order {
	r := &rd{b: b, chain: chain}
	require(r.u8() == codecVersion, "unsupported version", chain)
	o := &Order{Address: addr}
	o.Status = OrderStatus(r.u8())
	if o.Status != Open {
		r.mustEnd()
		return o
	}
	o.Maker = r.str()
	o.Amount = r.u64()
	o.Direction = Direction(r.u8())
	o.Expiration = r.u64()
	o.CreatedAt = r.u64()
	r.mustEnd()
	return o
}

// saveOrder writes the order record to chain state.
func saveOrder(chain SDKInterface, o *Order) {
	chain.StateSetObject(orderKey(o.Address), string(encodeOrder(o, chain)))
}

// readOrder returns the stored record, nil when the address was never
// used or has been fully released.
func readOrder(chain SDKInterface, addr string) *Order {
	ptr := chain.StateGetObject(orderKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeOrder(addr, []byte(*ptr), chain)
}

// loadOpenOrder is the settlement-side read: missing record aborts
// NotFound, a tombstone aborts AlreadyFinalized. Whichever transition the
// chain sequences first wins; everyone racing it lands here and fails
// cleanly with no fund movement.
func loadOpenOrder(chain SDKInterface, addr string) *Order {
	o := readOrder(chain, addr)
	require(o != nil, errNotFound, chain)
	require(o.Status == Open, errAlreadyFinalized, chain)
	return o
}

// finalizeOrder sets the terminal state, shrinking the record to a
// tombstone. Callable once per order: the second caller no longer sees an
// open record and aborts in loadOpenOrder.
func finalizeOrder(chain SDKInterface, o *Order, terminal OrderStatus) {
	o.Status = terminal
	saveOrder(chain, o)
}
