package main

import (
	"fmt"
	"testing"

	"trashmarket-otc/sdk"
)

// contractAccount is where drawn native funds pool in the fake chain,
// standing in for the contract's own balance.
const contractAccount = "contract:otc"

// FakeSDK is an in-memory chain for tests: KV state, per-account hive
// balances, a configurable env. Abort panics like the host does; callers
// use expectAbort to assert on it.
type FakeSDK struct {
	state    map[string]string
	hive     map[string]int64
	env      SDKInterfaceEnv
	envVars  map[string]string
	logs     []string
	aborted  bool
	abortMsg string
}

func NewFakeSDK(senderAddr string, txid string) *FakeSDK {
	f := &FakeSDK{
		state:   make(map[string]string),
		hive:    make(map[string]int64),
		envVars: map[string]string{"block.height": "100"},
	}
	f.env.TxId = txid
	f.setSender(senderAddr)
	return f
}

func (f *FakeSDK) setSender(addr string) {
	f.env.Sender = struct{ Address sdk.Address }{Address: sdk.Address(addr)}
	f.env.Caller = sdk.Address(addr)
	f.env.Intents = nil
}

func (f *FakeSDK) setHeight(h uint64) {
	f.envVars["block.height"] = UInt64ToString(h)
}

// allowTransfer attaches a transfer.allow intent to the next call(s),
// limit given as a fixed-point-3 decimal string.
func (f *FakeSDK) allowTransfer(limit string, token string) {
	f.env.Intents = []sdk.Intent{{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": token},
	}}
}

// fund seeds an account's native balance.
func (f *FakeSDK) fund(addr string, amount int64) {
	f.hive[addr] += amount
}

func (f *FakeSDK) StateSetObject(key, value string) {
	if value == "" {
		delete(f.state, key)
		return
	}
	f.state[key] = value
}

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) HiveDraw(amount int64, asset sdk.Asset) {
	from := f.env.Sender.Address.String()
	if f.hive[from] < amount {
		f.Abort(errInsufficientFunds)
	}
	f.hive[from] -= amount
	f.hive[contractAccount] += amount
}

func (f *FakeSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	if f.hive[contractAccount] < amount {
		f.Abort(errInsufficientFunds)
	}
	f.hive[contractAccount] -= amount
	f.hive[to.String()] += amount
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("Abort called: %s", msg))
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) GetEnv() SDKInterfaceEnv { return f.env }

func (f *FakeSDK) GetEnvKey(key string) *string {
	val, ok := f.envVars[key]
	if !ok {
		return nil
	}
	return &val
}

// mustAbort runs fn expecting it to abort with msg, then lets the test
// continue so post-conditions of the failed call can be asserted.
func mustAbort(t *testing.T, chain *FakeSDK, msg string, fn func()) {
	t.Helper()
	defer expectAbort(t, chain, msg)
	fn()
}

// expectAbort asserts the deferred recovery saw an Abort with the message.
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("expected Abort panic, but function did not panic")
	} else {
		if !chain.aborted {
			t.Errorf("expected chain.Abort to be called, but it wasn't")
		}
		if chain.abortMsg != expectedMsg {
			t.Errorf("expected abort message %q, got %q", expectedMsg, chain.abortMsg)
		}
	}
}
