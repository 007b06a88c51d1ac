// Package jobs provides scheduled background tasks.
//
// Jobs are cron schedules built on github.com/robfig/cron/v3 with a seconds
// field. The only job today is StatusRelayJob, which drains the order and
// worker status history outbox into the configured event broker.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(relayHandler, "*/5 * * * * *", 100, logger)
//	if err != nil {
//		return err
//	}
//	if err = jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted; its rows stay unpublished and are
// retried on the next tick. Overlapping runs are skipped.
package jobs
