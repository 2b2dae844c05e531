package main

//
// Order creation. The maker's funds are locked in the same call that
// records the order: there is never an open order without custody.
//

// parseOrderArgs splits the raw payload into amount, direction and
// expiration height. The amount is a fixed-point decimal with 3 places,
// same scaling the transfer intents use.
func parseOrderArgs(payload *string, chain SDKInterface) (amount uint64, dir Direction, expiration uint64) {
	in := *payload
	amount = parseFixedPoint3(nextField(&in), chain)
	dir = Direction(parseU8Fast(nextField(&in)))
	expiration = parseU64Fast(nextField(&in))
	require(in == "", "too many arguments", chain)
	return
}

// createOrderImpl validates the terms, opens custody and records the
// order under its derived address. Returns the address so the maker can
// hand it to takers.
func createOrderImpl(payload *string, chain SDKInterface) *string {
	amount, dir, expiration := parseOrderArgs(payload, chain)

	maker := sender(chain)
	height := currentHeight(chain)
	validateCreate(amount, dir, expiration, height, chain)

	addr := deriveOrderAddress(maker, amount, dir)

	// The derivation key is (maker, amount, direction): a second order
	// with identical terms before the first settles is a collision. A
	// tombstone frees the address for reuse.
	if existing := readOrder(chain, addr); existing != nil {
		require(existing.Status != Open, errDuplicateOrder, chain)
	}

	o := &Order{
		Address:    addr,
		Maker:      maker,
		Amount:     amount,
		Direction:  dir,
		Expiration: expiration,
		CreatedAt:  height,
		Status:     Open,
	}

	openEscrow(chain, o)
	saveOrder(chain, o)

	EmitOrderCreated(chain, addr, maker, amount, dir, expiration)

	ret := addr
	return &ret
}
