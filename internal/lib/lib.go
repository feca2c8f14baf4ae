// Package lib holds integrations that sit outside the request layers:
// background jobs on Redis via asynq and transactional email via Resend.
package lib
