package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckOwnerWitness checks witness of the passed asset owner.
// It panics with ErrUnauthorized message on fail.
func CheckOwnerWitness(owner []byte) {
	checkWitnessWithPanic(owner, ErrUnauthorized)
}

// CheckRoleWitness checks witness of the account currently holding a role.
// It panics with ErrUnauthorized message on fail.
func CheckRoleWitness(holder []byte) {
	checkWitnessWithPanic(holder, ErrUnauthorized)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
