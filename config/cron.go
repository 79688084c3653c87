package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. Jobs shipped with the app
// self-register through cron.Register from their package init instead.
var CronJobs = map[string]CronJob{}
