package request

type SyncRequest struct {
	DryRun bool `json:"dry_run"`
}
