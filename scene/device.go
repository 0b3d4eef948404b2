package scene

// GraphicsDevice stands in for the GPU device. It only keeps count of the
// buffers created against it so callers can check for leaks.
type GraphicsDevice struct {
	liveBuffers int
}

func NewGraphicsDevice() *GraphicsDevice {
	return &GraphicsDevice{}
}

func (d *GraphicsDevice) LiveBuffers() int {
	return d.liveBuffers
}

func (d *GraphicsDevice) track()   { d.liveBuffers++ }
func (d *GraphicsDevice) untrack() { d.liveBuffers-- }
