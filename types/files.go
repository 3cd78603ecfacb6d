package types

// Media categories derived from the file name suffix, not content inspection.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
	MediaOther = "other"
)

// FileEntry describes one stored file as returned by the listing endpoint.
type FileEntry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}
