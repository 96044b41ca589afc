package ports

// Renderer post-processes captured images.
type Renderer interface {
	// Normalize returns PNG data with exactly width x height pixels,
	// rescaling when the source has different bounds.
	Normalize(data []byte, width, height int) ([]byte, error)
}
