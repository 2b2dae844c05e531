package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	treq "github.com/stretchr/testify/require"
)

const (
	maker = "hive:maker"
	taker = "hive:taker"
)

// wrap funds addr with amount of wrapped balance via a real deposit.
func wrap(t *testing.T, chain *FakeSDK, addr, amount string) {
	t.Helper()
	prev := chain.env.Sender.Address.String()
	chain.setSender(addr)
	chain.fund(addr, int64(mustFP3(t, chain, amount)))
	chain.allowTransfer(amount, "hive")
	p := ""
	depositImpl(&p, chain)
	chain.setSender(prev)
}

func mustFP3(t *testing.T, chain *FakeSDK, s string) uint64 {
	t.Helper()
	return parseFixedPoint3(s, chain)
}

func TestDeriveAddressDeterministic(t *testing.T) {
	a1 := deriveOrderAddress(maker, 1000, AtoB)
	a2 := deriveOrderAddress(maker, 1000, AtoB)
	assert.Equal(t, a1, a2, "same terms must derive the same address")

	assert.NotEqual(t, a1, deriveOrderAddress(maker, 1001, AtoB))
	assert.NotEqual(t, a1, deriveOrderAddress(maker, 1000, BtoA))
	assert.NotEqual(t, a1, deriveOrderAddress(taker, 1000, AtoB))
	assert.NotEqual(t, a1, deriveEscrowAddress(maker, 1000, AtoB),
		"order and escrow accounts live at distinct addresses")
	assert.Len(t, a1, 64)
}

func TestOrderCodecRoundtrip(t *testing.T) {
	chain := NewFakeSDK(maker, "tx1")
	o := &Order{
		Address:    deriveOrderAddress(maker, 5000, BtoA),
		Maker:      maker,
		Amount:     5000,
		Direction:  BtoA,
		Expiration: 1100,
		CreatedAt:  100,
		Status:     Open,
	}
	got := decodeOrder(o.Address, encodeOrder(o, chain), chain)
	assert.Equal(t, o, got)

	// tombstone keeps only the terminal status
	o.Status = Filled
	got = decodeOrder(o.Address, encodeOrder(o, chain), chain)
	assert.Equal(t, Filled, got.Status)
	assert.Empty(t, got.Maker)
	assert.Zero(t, got.Amount)
}

func TestCreateOrder_NativeLock(t *testing.T) {
	chain := NewFakeSDK(maker, "tx2")
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("1000.000", "hive")

	p := "1000.000|2|1100"
	ret := createOrderImpl(&p, chain)
	treq.NotNil(t, ret)

	o := readOrder(chain, *ret)
	treq.NotNil(t, o)
	assert.Equal(t, Open, o.Status)
	assert.Equal(t, maker, o.Maker)
	assert.Equal(t, uint64(1_000_000), o.Amount)
	assert.Equal(t, BtoA, o.Direction)
	assert.Equal(t, uint64(1100), o.Expiration)
	assert.Equal(t, uint64(100), o.CreatedAt)

	// escrowed balance equals exactly the locked amount
	assert.Equal(t, int64(1_000_000), chain.hive[contractAccount])
	assert.Equal(t, int64(1_000_000), chain.hive[maker])
}

func TestCreateOrder_WrappedLock(t *testing.T) {
	chain := NewFakeSDK(maker, "tx3")
	wrap(t, chain, maker, "1000.000")

	p := "1000.000|1|1100"
	ret := createOrderImpl(&p, chain)
	treq.NotNil(t, ret)

	o := readOrder(chain, *ret)
	treq.NotNil(t, o)
	assert.Equal(t, AtoB, o.Direction)

	esc := deriveEscrowAddress(maker, 1_000_000, AtoB)
	assert.Equal(t, uint64(1_000_000), readEscrow(chain, esc))
	assert.Zero(t, tokenBalance(chain, maker))
}

func TestCreateOrder_BelowMinimum(t *testing.T) {
	chain := NewFakeSDK(maker, "tx4")
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("0.999", "hive")

	p := "0.999|2|1100"
	defer expectAbort(t, chain, errInvalidAmount)
	createOrderImpl(&p, chain)
}

func TestCreateOrder_ExpirationInPast(t *testing.T) {
	chain := NewFakeSDK(maker, "tx5")
	chain.setHeight(500)
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("1000.000", "hive")

	p := "1000.000|2|500"
	defer expectAbort(t, chain, errInvalidExpiration)
	createOrderImpl(&p, chain)
}

func TestCreateOrder_ExpirationBeyondWindow(t *testing.T) {
	chain := NewFakeSDK(maker, "tx6")
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("1000.000", "hive")

	p := "1000.000|2|" + UInt64ToString(100+maxExpiryWindow+1)
	defer expectAbort(t, chain, errInvalidExpiration)
	createOrderImpl(&p, chain)
}

func TestCreateOrder_DuplicateCollision(t *testing.T) {
	chain := NewFakeSDK(maker, "tx7")
	chain.fund(maker, 4_000_000)
	chain.allowTransfer("1000.000", "hive")

	p := "1000.000|2|1100"
	createOrderImpl(&p, chain)

	// identical maker+amount+direction while the first is still open
	chain.allowTransfer("1000.000", "hive")
	p2 := "1000.000|2|1200"
	defer expectAbort(t, chain, errDuplicateOrder)
	createOrderImpl(&p2, chain)
}

func TestCreateOrder_InsufficientWrapped(t *testing.T) {
	chain := NewFakeSDK(maker, "tx8")
	wrap(t, chain, maker, "1.000")

	p := "2.000|1|1100"
	defer expectAbort(t, chain, errInsufficientFunds)
	createOrderImpl(&p, chain)
}

func TestCreateOrder_IntentCoversExactFraction(t *testing.T) {
	chain := NewFakeSDK(maker, "tx13")
	chain.fund(maker, 1_001)
	chain.allowTransfer("1.001", "hive")

	p := "1.001|2|1100"
	ret := createOrderImpl(&p, chain)
	treq.NotNil(t, ret)

	o := readOrder(chain, *ret)
	treq.NotNil(t, o)
	assert.Equal(t, uint64(1_001), o.Amount)
	assert.Equal(t, int64(1_001), chain.hive[contractAccount])
}

func TestCreateOrder_MissingIntent(t *testing.T) {
	chain := NewFakeSDK(maker, "tx9")
	chain.fund(maker, 2_000_000)

	p := "1000.000|2|1100"
	defer expectAbort(t, chain, "intent missing")
	createOrderImpl(&p, chain)
}

func TestGetOrder_Open(t *testing.T) {
	chain := NewFakeSDK(maker, "tx10")
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("500.000", "hive")

	p := "500.000|2|1100"
	addr := createOrderImpl(&p, chain)

	q := *addr
	resp := getOrderImpl(&q, chain)
	treq.NotNil(t, resp)
	assert.Equal(t, *addr+"|"+maker+"|500000|2|1100|100|1", *resp)
}

func TestGetOrder_AfterFinalize(t *testing.T) {
	chain := NewFakeSDK(maker, "tx12")
	chain.fund(maker, 2_000_000)
	chain.allowTransfer("500.000", "hive")

	p := "500.000|2|1100"
	addr := createOrderImpl(&p, chain)

	c := *addr
	cancelOrderImpl(&c, chain)

	// terms are gone with the reclaimed storage, terminal status remains
	q := *addr
	resp := getOrderImpl(&q, chain)
	treq.NotNil(t, resp)
	assert.Equal(t, *addr+"||0|0|0|0|3", *resp)
}

func TestGetOrder_NotFound(t *testing.T) {
	chain := NewFakeSDK(maker, "tx11")
	q := deriveOrderAddress(maker, 123456, AtoB)
	defer expectAbort(t, chain, errNotFound)
	getOrderImpl(&q, chain)
}
