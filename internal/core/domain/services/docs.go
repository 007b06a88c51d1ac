// Package services provides domain services whose rules span more than one
// aggregate or depend on configuration rather than on aggregate state.
//
// The package includes:
//   - AccessGate: role based authorization for an operation
//   - CancellationFeeCalculator: the fee owed when an order is cancelled close
//     to its pickup time, looked up from the per-role policy table
package services
