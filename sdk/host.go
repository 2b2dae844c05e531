//go:build !test

package sdk

import (
	"encoding/json"
	"unsafe"
)

// Host bindings for the wasm runtime. Strings cross the boundary as
// (pointer, length) pairs; host-returned strings come back packed as
// ptr<<32|len, zero meaning nil.

//go:wasmimport sdk state.setObject
func hostStateSet(keyPtr unsafe.Pointer, keyLen uint32, valPtr unsafe.Pointer, valLen uint32)

//go:wasmimport sdk state.getObject
func hostStateGet(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport sdk system.getEnv
func hostGetEnv() uint64

//go:wasmimport sdk system.getEnvKey
func hostGetEnvKey(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport sdk system.log
func hostLog(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport sdk system.abort
func hostAbort(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport sdk hive.draw
func hostHiveDraw(amount int64, assetPtr unsafe.Pointer, assetLen uint32)

//go:wasmimport sdk hive.transfer
func hostHiveTransfer(toPtr unsafe.Pointer, toLen uint32, amount int64, assetPtr unsafe.Pointer, assetLen uint32)

func strArg(s string) (unsafe.Pointer, uint32) {
	if len(s) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.StringData(s)), uint32(len(s))
}

func unpackString(packed uint64) *string {
	if packed == 0 {
		return nil
	}
	ptr := uintptr(packed >> 32)
	n := int(uint32(packed))
	s := unsafe.String((*byte)(unsafe.Pointer(ptr)), n)
	return &s
}

func StateSetObject(key, value string) {
	kp, kl := strArg(key)
	vp, vl := strArg(value)
	hostStateSet(kp, kl, vp, vl)
}

func StateGetObject(key string) *string {
	kp, kl := strArg(key)
	return unpackString(hostStateGet(kp, kl))
}

func Abort(msg string) {
	mp, ml := strArg(msg)
	hostAbort(mp, ml)
}

func Log(msg string) {
	mp, ml := strArg(msg)
	hostLog(mp, ml)
}

func GetEnv() Env {
	var e Env
	if raw := unpackString(hostGetEnv()); raw != nil {
		json.Unmarshal([]byte(*raw), &e)
	}
	return e
}

func GetEnvKey(key string) *string {
	kp, kl := strArg(key)
	return unpackString(hostGetEnvKey(kp, kl))
}

func HiveDraw(amount int64, asset Asset) {
	ap, al := strArg(string(asset))
	hostHiveDraw(amount, ap, al)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	tp, tl := strArg(string(to))
	ap, al := strArg(string(asset))
	hostHiveTransfer(tp, tl, amount, ap, al)
}
