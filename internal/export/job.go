package export

// QueueName is the queue playlist export jobs travel on.
const QueueName = "export:playlist_songs"

// Job is the message handed to the worker for one export request.
type Job struct {
	PlaylistID  string `json:"playlistId"`
	UserID      string `json:"userId"`
	TargetEmail string `json:"targetEmail"`
}
