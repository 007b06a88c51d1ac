// Package worker provides the Worker aggregate: the profile of a user with
// the worker role, its availability status and performance score.
//
// Key business rules:
//   - A worker shares its identifier with the owning user
//   - New workers start inactive
//   - Every availability change records who made it and when; the change is
//     persisted as a WorkerStatusHistory row together with the worker itself
//   - Setting the status a worker already has is rejected
package worker
