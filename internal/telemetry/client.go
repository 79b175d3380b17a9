package telemetry

// #region imports
import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/gaia-agent/gen/telemetry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #endregion imports

// #region client-struct

// Client wraps the gRPC connection to an external telemetry service that
// serves live scalar readings.
type Client struct {
	conn   *grpc.ClientConn
	client pb.TelemetryClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the telemetry gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewTelemetryClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.TelemetryClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region read-scalar

// ReadScalar fetches the current value of one named source.
func (c *Client) ReadScalar(ctx context.Context, source string) (float64, error) {
	resp, err := c.client.ReadScalar(ctx, &pb.ReadScalarRequest{Source: source})
	if err != nil {
		return 0, fmt.Errorf("read scalar rpc %s: %w", source, err)
	}
	return resp.Value, nil
}

// #endregion read-scalar

// #region list-sources

// ListSources fetches the names of all sources the service exposes.
func (c *Client) ListSources(ctx context.Context) ([]string, error) {
	resp, err := c.client.ListSources(ctx, &pb.ListSourcesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list sources rpc: %w", err)
	}
	return resp.Sources, nil
}

// #endregion list-sources
