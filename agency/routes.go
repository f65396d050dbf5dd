package agency

import "github.com/tedsuo/rata"

const (
	SubmitExperiment = "SubmitExperiment"
	ListBatches      = "ListBatches"
	FetchBatch       = "FetchBatch"
	DeleteBatch      = "DeleteBatch"
	FetchBatchStream = "FetchBatchStream"
)

var Routes = rata.Routes{
	{Path: "/experiments", Method: "POST", Name: SubmitExperiment},
	{Path: "/batches", Method: "GET", Name: ListBatches},
	{Path: "/batches/:batch_id", Method: "GET", Name: FetchBatch},
	{Path: "/batches/:batch_id", Method: "DELETE", Name: DeleteBatch},
	{Path: "/batches/:batch_id/streams/:stream_name", Method: "GET", Name: FetchBatchStream},
}
