package telemetry

// #region imports
import "context"

// #endregion imports

// #region remote-sensor

// RemoteSensor adapts one telemetry source into a sense.Sensor. RPC failures
// surface as read errors, so a dead telemetry service aborts the cycle instead
// of corrupting the observation vector with a default.
type RemoteSensor struct {
	name   string
	source string
	client *Client
}

// NewRemoteSensor creates a sensor named name that reads the telemetry source
// source. source may equal name; they differ when a domain aliases a shared
// upstream signal.
func NewRemoteSensor(name, source string, client *Client) *RemoteSensor {
	return &RemoteSensor{name: name, source: source, client: client}
}

// Name returns the sensor name.
func (s *RemoteSensor) Name() string {
	return s.name
}

// Read fetches the source's current value over gRPC.
func (s *RemoteSensor) Read(ctx context.Context) (float64, error) {
	return s.client.ReadScalar(ctx, s.source)
}

// #endregion remote-sensor
