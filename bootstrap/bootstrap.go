// Package bootstrap loads the physics module before the application starts.
package bootstrap

import (
	"log"
	"runtime"
)

const (
	ModuleName = "Ammo"

	WasmGlue   = "/assets/ammo/ammo.wasm.js"
	WasmBinary = "../assets/ammo/ammo.wasm.wasm"
	ScriptOnly = "/assets/ammo/ammo.js"
)

// ModuleLoader fetches a named module from a primary URL and an optional
// secondary binary, then calls cb.
type ModuleLoader interface {
	LoadModule(name, primary, secondary string, cb func())
}

// WasmSupported reports whether the running binary can host a WASM module.
func WasmSupported() bool {
	return runtime.GOOS == "js" && runtime.GOARCH == "wasm"
}

// Start picks the WASM build when supported, otherwise the script-only
// build with no secondary binary, and hands cb to the loader.
func Start(supported func() bool, loader ModuleLoader, cb func()) {
	if supported == nil {
		supported = WasmSupported
	}
	if supported() {
		log.Printf("bootstrap: loading %s (wasm)", ModuleName)
		loader.LoadModule(ModuleName, WasmGlue, WasmBinary, cb)
		return
	}
	log.Printf("bootstrap: loading %s", ModuleName)
	loader.LoadModule(ModuleName, ScriptOnly, "", cb)
}
