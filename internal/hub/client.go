package hub

// Client is one live connection as seen by the hub. The transport drains
// Events and writes each line to the wire; the hub closes the channel when
// the client disconnects.
type Client struct {
	ConnID  int64
	Session string
	Events  chan string
}
