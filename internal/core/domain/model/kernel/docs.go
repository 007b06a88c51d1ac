// Package kernel provides the shared primitives of the domain model:
//   - UUID: identifier value object for every entity
//   - Clock: source of "now" for time-based lifecycle rules
//   - Timestamps: ISO-8601 parsing and UTC normalization with a configurable
//     record timezone for zone-less input
package kernel
