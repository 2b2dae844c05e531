package main

import (
	"trashmarket-otc/sdk"
)

// --- SDK interface abstraction ---

type SDKInterfaceEnv struct {
	Sender struct {
		Address sdk.Address
	}
	Caller  sdk.Address
	TxId    string
	Intents []sdk.Intent
}

type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() SDKInterfaceEnv
	GetEnvKey(key string) *string
	HiveDraw(amount int64, asset sdk.Asset)
	HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset)
}

// RealSDK is the production implementation that forwards to the host
// bindings in trashmarket-otc/sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) GetEnv() SDKInterfaceEnv {
	e := sdk.GetEnv()
	return SDKInterfaceEnv{
		Sender:  struct{ Address sdk.Address }{Address: e.Sender.Address},
		Caller:  e.Caller,
		TxId:    e.TxId,
		Intents: e.Intents,
	}
}
func (RealSDK) GetEnvKey(key string) *string { return sdk.GetEnvKey(key) }
func (RealSDK) HiveDraw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}
func (RealSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}

// sender returns the signing account of the current call.
func sender(chain SDKInterface) string {
	return chain.GetEnv().Sender.Address.String()
}

// currentHeight reads the block height the call is being applied at.
func currentHeight(chain SDKInterface) uint64 {
	ptr := chain.GetEnvKey("block.height")
	if ptr == nil || *ptr == "" {
		chain.Abort("block height unavailable")
	}
	return parseU64Fast(*ptr)
}
