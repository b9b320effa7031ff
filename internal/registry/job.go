package registry

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ServedSyncArgs contains the arguments of a served meals upload job submitted
// to River. Jobs are unique per session so repeated consumption changes within
// the unique period collapse into one upload.
type ServedSyncArgs struct {
	// SessionID identifies the session whose served meals should be uploaded.
	SessionID int64 `json:"sessionId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniquePeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the served
// meals upload worker.
func (args ServedSyncArgs) Kind() string { return "SyncServedMealsJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints collapsing
// duplicate uploads of the same session.
func (args ServedSyncArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one pending upload per session
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// MasterSyncArgs contains the arguments of a master data download job. The
// job fetches the student roster and reservation list from the master
// spreadsheet and imports them.
type MasterSyncArgs struct {
	maxAttempts  int
	uniquePeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the master
// data download worker.
func (args MasterSyncArgs) Kind() string { return "SyncMasterDataJob" }

// InsertOpts returns the River options that prevent more than one concurrent
// master data download.
func (args MasterSyncArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
