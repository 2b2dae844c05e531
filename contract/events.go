package main

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and attributes,
// and logs it to the chain as JSON for indexers to pick up.
func emitEvent(chain SDKInterface, eventType string, attributes map[string]string) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitOrderCreated emits an event when a maker opens a new order.
func EmitOrderCreated(chain SDKInterface, addr, maker string, amount uint64, dir Direction, expiration uint64) {
	emitEvent(chain, "orderCreated", map[string]string{
		"order":      addr,
		"maker":      maker,
		"amount":     UInt64ToString(amount),
		"direction":  UInt64ToString(uint64(dir)),
		"expiration": UInt64ToString(expiration),
	})
}

// EmitOrderFilled emits an event when a taker settles an order.
func EmitOrderFilled(chain SDKInterface, addr, taker string) {
	emitEvent(chain, "orderFilled", map[string]string{
		"order": addr,
		"taker": taker,
	})
}

// EmitOrderCancelled emits an event when the maker cancels before a fill.
func EmitOrderCancelled(chain SDKInterface, addr, maker string) {
	emitEvent(chain, "orderCancelled", map[string]string{
		"order": addr,
		"maker": maker,
	})
}

// EmitOrderReclaimed emits an event when the maker recovers an expired order.
func EmitOrderReclaimed(chain SDKInterface, addr, maker string) {
	emitEvent(chain, "orderReclaimed", map[string]string{
		"order": addr,
		"maker": maker,
	})
}

// EmitTokenDeposit emits an event when native coin is wrapped.
func EmitTokenDeposit(chain SDKInterface, addr string, amount uint64) {
	emitEvent(chain, "tokenDeposit", map[string]string{
		"account": addr,
		"amount":  UInt64ToString(amount),
	})
}

// EmitTokenWithdraw emits an event when wrapped balance is unwrapped.
func EmitTokenWithdraw(chain SDKInterface, addr string, amount uint64) {
	emitEvent(chain, "tokenWithdraw", map[string]string{
		"account": addr,
		"amount":  UInt64ToString(amount),
	})
}

// EmitTokenTransfer emits an event when wrapped balance moves between accounts.
func EmitTokenTransfer(chain SDKInterface, from, to string, amount uint64) {
	emitEvent(chain, "tokenTransfer", map[string]string{
		"from":   from,
		"to":     to,
		"amount": UInt64ToString(amount),
	})
}
