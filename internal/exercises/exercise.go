package exercises

// Exercise is one entry of the shared exercise catalog. The catalog is
// not user-owned, every plan references these entries by ID.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	ImagePath   string `json:"imagePath,omitempty"`
}
