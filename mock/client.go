package mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nbardi/namada/core/logger"
	"github.com/nbardi/namada/core/queries"
)

// Client queries an in-process router backed by a mock [Storage], standing
// in for a node RPC connection in tests.
type Client struct {
	rpc     *queries.Router
	storage *Storage
	log     *logrus.Entry
}

var _ queries.Client = (*Client)(nil)

// NewClient wires a router to a state. Pass queries.RPC to exercise the
// full routing table.
func NewClient(rpc *queries.Router, storage *Storage) *Client {
	return &Client{
		rpc:     rpc,
		storage: storage,
		log:     logger.Logger().WithField("component", "mock-client"),
	}
}

// Storage exposes the backing state for test setup.
func (c *Client) Storage() *Storage {
	return c.storage
}

func (c *Client) Query(ctx context.Context, req *queries.RequestQuery) (*queries.EncodedResponseQuery, error) {
	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       req.Path,
	})
	log.Debug("dispatching query")

	resp, err := c.rpc.Handle(ctx, queries.RequestCtx{State: c.storage}, req)
	if err != nil {
		log.WithError(err).Debug("query failed")

		return nil, err
	}

	return resp, nil
}
