//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// Engines built so far, keyed by "p,a,b".
var engines = make(map[string]*ecarith.Engine)

// Largest field the points call will enumerate.
const maxEnumerate = 1 << 16

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECArith WASM Initialized")

	js.Global().Set("ECArith", map[string]interface{}{
		"add":       js.FuncOf(Add),
		"isOnCurve": js.FuncOf(IsOnCurve),
		"points":    js.FuncOf(Points),
	})

	<-c
}

type curveInput struct {
	P string `json:"p"`
	A string `json:"a"`
	B string `json:"b"`
}

type pointJSON struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

func (p pointJSON) point() ecarith.Point { return ecarith.Point{X: p.X, Y: p.Y} }

// Add adds two points.
// Arguments:
// 0: JSON {"p","a","b"} with decimal strings
// 1: JSON {"x","y"}
// 2: JSON {"x","y"}
// Returns:
// JSON {"onCurve": bool, "finite": bool, "sum": {"x","y"}} or an error string
func Add(this js.Value, args []js.Value) interface{} {
	if len(args) != 3 {
		return "error: expected 3 arguments (curve, first, second)"
	}
	e, err := engineFor(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var P, Q pointJSON
	if err := json.Unmarshal([]byte(args[1].String()), &P); err != nil {
		return fmt.Sprintf("error: invalid first point: %v", err)
	}
	if err := json.Unmarshal([]byte(args[2].String()), &Q); err != nil {
		return fmt.Sprintf("error: invalid second point: %v", err)
	}

	resp := map[string]interface{}{"onCurve": false, "finite": false}
	if e.IsOnCurve(P.point()) && e.IsOnCurve(Q.point()) {
		resp["onCurve"] = true
		if sum, ok := e.Add(P.point(), Q.point()); ok {
			resp["finite"] = true
			resp["sum"] = pointJSON{X: sum.X, Y: sum.Y}
		}
	}
	return marshal(resp)
}

// IsOnCurve checks one point.
// Arguments:
// 0: JSON {"p","a","b"}
// 1: JSON {"x","y"}
// Returns:
// bool or an error string
func IsOnCurve(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, point)"
	}
	e, err := engineFor(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var pt pointJSON
	if err := json.Unmarshal([]byte(args[1].String()), &pt); err != nil {
		return fmt.Sprintf("error: invalid point: %v", err)
	}
	return e.IsOnCurve(pt.point())
}

// Points lists every affine point.
// Arguments:
// 0: JSON {"p","a","b"}
// Returns:
// JSON array of {"x","y"} or an error string
func Points(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curve)"
	}
	e, err := engineFor(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if e.Params().P > maxEnumerate {
		return fmt.Sprintf("error: field too large to enumerate (p > %d)", maxEnumerate)
	}
	// js/wasm is single threaded, one worker is enough
	pts, err := e.Points(context.Background(), 1)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	out := make([]pointJSON, len(pts))
	for i, pt := range pts {
		out[i] = pointJSON{X: pt.X, Y: pt.Y}
	}
	return marshal(out)
}

func engineFor(curveJSON string) (*ecarith.Engine, error) {
	var in curveInput
	if err := json.Unmarshal([]byte(curveJSON), &in); err != nil {
		return nil, fmt.Errorf("invalid curve json: %v", err)
	}
	key := in.P + "," + in.A + "," + in.B
	if e, ok := engines[key]; ok {
		return e, nil
	}
	e, err := ecarith.Parse(in.P, in.A, in.B)
	if err != nil {
		return nil, err
	}
	engines[key] = e
	return e, nil
}

func marshal(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}
