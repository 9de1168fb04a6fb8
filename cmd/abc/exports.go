//go:build wasip1

package main

import (
	"wasmiot-abc/internal/config"
	"wasmiot-abc/internal/fsops"
	"wasmiot-abc/internal/logging"
	"wasmiot-abc/internal/mount"
)

// Mounts resolve against the working directory the host preopens.
var fixture = mount.New(
	fsops.OSFS{},
	config.Default(),
	mount.WithLogger(logging.Must(nil)),
)

// Demonstrates reading from files and returning a signed 32-bit integer.
//
//go:wasmexport a
func a(p0 uint32, p1 float32) int32 {
	return fixture.A(p0, p1)
}

// Demonstrates returning a 32-bit float.
//
//go:wasmexport b
func b() float32 {
	return fixture.B()
}

// Demonstrates writing to a file and returning an unsigned 32-bit integer.
//
//go:wasmexport c
func c() uint32 {
	return fixture.C()
}

// main is required for the wasip1 target even in a reactor build.
func main() {}
