// Package crypto defines the contracts for cryptographic primitives served
// through the algorithm factory.
//
// The library core never implements a primitive itself; it only resolves
// primitive requests against the registered engines. Concrete
// implementations live in the infrastructure layer.
package crypto
