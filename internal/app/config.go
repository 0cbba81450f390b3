package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir    string // base directory for relative paths; empty means the working directory
	Width  int    // plot width in pixels; 0 picks render.DefaultWidth
	Height int    // plot height in pixels; 0 picks render.DefaultHeight
}
