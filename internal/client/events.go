package client

import (
	"context"
	"fmt"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
)

// EventsClient implements shopapi.EventsClient.
type EventsClient struct {
	exec *executor
}

// NewEventsClient creates a new events client.
func NewEventsClient(exec *executor) *EventsClient {
	return &EventsClient{exec: exec}
}

// eventShape describes the platform event payload.
var eventShape = shopapi.Object(map[string]*shopapi.Shape{
	"id":           shopapi.Leaf(),
	"subject_id":   shopapi.Leaf(),
	"subject_type": shopapi.Leaf(),
	"verb":         shopapi.Leaf(),
	"message":      shopapi.Leaf(),
	"created_at":   shopapi.Leaf(),
})

// List implements shopapi.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, params *shopapi.QueryParams) ([]shopapi.Event, shopapi.Meta, error) {
	return fetchList[shopapi.Event](ctx, c.exec, "/events.json", values(params), "events", shopapi.List(eventShape))
}

// Get implements shopapi.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id int64) (*shopapi.Event, error) {
	path := fmt.Sprintf("/events/%d.json", id)

	return fetchOne[shopapi.Event](ctx, c.exec, "GET", path, nil, nil, "event", eventShape)
}

// Count implements shopapi.EventsClient.Count.
func (c *EventsClient) Count(ctx context.Context, params *shopapi.QueryParams) (int64, error) {
	return fetchCount(ctx, c.exec, "/events/count.json", values(params))
}
