package broker

import "testing"

func TestPublisherPoolRoutingKey(t *testing.T) {
	withExchange := &PublisherPool{queue: "publish-queue", exchange: "nfe-exchange", key: "nfe.parsed"}
	if got := withExchange.routingKey(); got != "nfe.parsed" {
		t.Errorf("routingKey() with exchange = %q, want nfe.parsed", got)
	}

	withoutExchange := &PublisherPool{queue: "publish-queue", exchange: "", key: "nfe.parsed"}
	if got := withoutExchange.routingKey(); got != "publish-queue" {
		t.Errorf("routingKey() without exchange = %q, want publish-queue (direct-to-queue default)", got)
	}
}
