//go:build js && wasm

// Command wasm runs kinematic analyses in the browser. It registers one global
// JavaScript function:
//
//	runKinematicAnalysis(sessionJSON) -> reportJSON
//
// sessionJSON is a saved session, {"name": ..., "geometry": {...}}. reportJSON
// carries the run "id", the whole-stroke "summary" and the per-sample
// "results" (states plus rear and front axle paths relative to the bottom
// bracket). Invalid input returns {"error": message} instead.
package main

import (
	"syscall/js"

	"github.com/cxd309/suspension-engine/internal/engine"
)

func main() {
	js.Global().Set("runKinematicAnalysis", js.FuncOf(runKinematicAnalysis))
	select {} // block so the registered callback stays reachable
}

func runKinematicAnalysis(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String())
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return result
}
