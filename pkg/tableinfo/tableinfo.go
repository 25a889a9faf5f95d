package tableinfo

const (
	TracksTableName = "tracks"

	TrackIDColumn         = "id"
	TrackRemoteIDColumn   = "remote_id"
	TrackTitleColumn      = "title"
	TrackArtistColumn     = "artist"
	TrackDurationMSColumn = "duration_ms"
	TrackCreatedAtColumn  = "created_at"
)
