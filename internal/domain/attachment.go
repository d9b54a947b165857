package domain

// Attachment describes a stored blob. The store owns the bytes and
// their retention; this is only the descriptor handed to clients.
type Attachment struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	Path         string `json:"path"`
}
