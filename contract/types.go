package main

// Direction selects which asset the maker locks and therefore which
// custody mechanism the order uses. AtoB locks the wrapped token (held in
// a dedicated token-custody record), BtoA locks the native coin (held in
// the contract's own hive balance).
type Direction uint8

const (
	AtoB Direction = 1 // maker locks wrapped, taker pays native
	BtoA Direction = 2 // maker locks native, taker pays wrapped
)

// OrderStatus indicates the lifecycle state of an order.
// Open is the only non-terminal state; every terminal transition
// destroys the custody record in the same call.
type OrderStatus uint8

const (
	Open             OrderStatus = 1
	Filled           OrderStatus = 2
	Cancelled        OrderStatus = 3
	ExpiredReclaimed OrderStatus = 4
)

// Order is the runtime struct; storage is binary (see order.go).
//
// Amount is in milliunits (3 decimal places, the chain's smallest
// indivisible unit). Expiration and CreatedAt are block heights.
type Order struct {
	Address    string // derived order address, doubles as the order id
	Maker      string
	Amount     uint64
	Direction  Direction
	Expiration uint64
	CreatedAt  uint64
	Status     OrderStatus
}

const (
	// minOrderAmount rejects dust orders (0.001 in fixed-point-3 units).
	minOrderAmount uint64 = 1000

	// maxExpiryWindow caps how far out an order can expire, ~24h of
	// 3-second blocks, so capital cannot be locked longer than a day.
	maxExpiryWindow uint64 = 28800
)

func validDirection(d Direction) bool { return d == AtoB || d == BtoA }
