// Package broker owns the RabbitMQ connection, topology, and
// consumer/publisher channel pools, grounded on
// original_source/src/rabbitmq/consumer.rs (RabbitMqConsumer) and
// original_source/src/rabbitmq/producer.rs, reimplemented over
// github.com/rabbitmq/amqp091-go instead of amqprs.
package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/biel-despair/fiscal-doc-worker/common"
	"github.com/biel-despair/fiscal-doc-worker/errors"
)

const (
	deadLetterExchange = "dead_letter_exchange"
	deadLetterQueue    = "dead_letter_queue"
	reconnectBackoff   = 5 * time.Second
	consumerTag        = "parser-xml"
)

// Delivery is the subset of amqp.Delivery the worker acts on.
type Delivery struct {
	Body []byte
	raw  amqp.Delivery
}

// Ack acknowledges the delivery.
func (d Delivery) Ack() error { return d.raw.Ack(false) }

// Reject rejects the delivery without requeue; the DLX binding
// routes it to dead_letter_queue.
func (d Delivery) Reject() error { return d.raw.Reject(false) }

// PublisherPool is the shared publishing channel pool. awaitOpenChannel
// polls for an open channel rather than failing, mirroring
// get_publisher_channel in consumer.rs.
type PublisherPool struct {
	mu       sync.Mutex
	channels []*amqp.Channel
	queue    string
	exchange string
	key      string
}

// Publish sends body to the configured topology, polling for an open
// channel the same way the Rust producer's get_publisher_channel does.
func (p *PublisherPool) Publish(ctx context.Context, body []byte) error {
	ch, err := p.awaitOpenChannel(ctx)
	if err != nil {
		return errors.NewPublishError(err)
	}
	err = ch.PublishWithContext(ctx, p.exchange, p.routingKey(), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return errors.NewPublishError(err)
	}
	return nil
}

func (p *PublisherPool) routingKey() string {
	if p.exchange == "" {
		return p.queue
	}
	return p.key
}

func (p *PublisherPool) awaitOpenChannel(ctx context.Context) (*amqp.Channel, error) {
	for {
		p.mu.Lock()
		for _, ch := range p.channels {
			if !ch.IsClosed() {
				p.mu.Unlock()
				return ch, nil
			}
		}
		p.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}

// ConsumerSupervisor owns the connection, the consumer channel pool,
// and the shared PublisherPool, restarting all three on connection
// loss per spec §4.8.
type ConsumerSupervisor struct {
	cfg     common.BrokerConfig
	log     *zap.Logger
	conn    *amqp.Connection
	chans   []*amqp.Channel
	pool    *PublisherPool
	handler func(Delivery)
}

// New builds a supervisor for cfg. handler is invoked for every
// inbound delivery on any consumer channel.
func New(cfg common.BrokerConfig, log *zap.Logger, handler func(Delivery)) *ConsumerSupervisor {
	return &ConsumerSupervisor{cfg: cfg, log: log, handler: handler}
}

// Publisher returns the supervisor's shared publishing pool, valid
// only after Run has connected at least once.
func (s *ConsumerSupervisor) Publisher() *PublisherPool { return s.pool }

// Run connects and supervises the connection until ctx is cancelled,
// restarting from scratch on every connection loss with a fixed
// 5-second backoff.
func (s *ConsumerSupervisor) Run(ctx context.Context) error {
	for {
		if err := s.connectAndRegister(); err != nil {
			s.log.Warn("broker connect failed, retrying", zap.Error(err), zap.Duration("backoff", reconnectBackoff))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(reconnectBackoff):
				continue
			}
		}

		closed := s.conn.NotifyClose(make(chan *amqp.Error, 1))
		select {
		case <-ctx.Done():
			s.conn.Close()
			return ctx.Err()
		case err := <-closed:
			s.log.Warn("broker connection lost, reconnecting", zap.Error(err))
			s.chans = nil
			continue
		}
	}
}

func (s *ConsumerSupervisor) connectAndRegister() error {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", s.cfg.User, s.cfg.Password, s.cfg.Host, s.cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return errors.NewBrokerConnectError(err)
	}
	s.conn = conn

	if err := s.declareTopology(); err != nil {
		conn.Close()
		return err
	}

	if err := s.openConsumerChannels(); err != nil {
		conn.Close()
		return err
	}

	pubCh, err := conn.Channel()
	if err != nil {
		conn.Close()
		return errors.NewBrokerConnectError(err)
	}
	s.pool = &PublisherPool{
		channels: []*amqp.Channel{pubCh},
		queue:    s.cfg.PublishQueue,
		exchange: s.cfg.Exchange,
		key:      s.cfg.RoutingKey,
	}

	return s.registerConsumers()
}

func (s *ConsumerSupervisor) declareTopology() error {
	ch, err := s.conn.Channel()
	if err != nil {
		return errors.NewBrokerConnectError(err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(deadLetterExchange, "direct", true, false, false, false, nil); err != nil {
		return errors.NewBrokerConnectError(err)
	}
	if _, err := ch.QueueDeclare(deadLetterQueue, true, false, false, false, nil); err != nil {
		return errors.NewBrokerConnectError(err)
	}
	if err := ch.QueueBind(deadLetterQueue, deadLetterQueue, deadLetterExchange, false, nil); err != nil {
		return errors.NewBrokerConnectError(err)
	}

	consumeArgs := amqp.Table{
		"x-dead-letter-exchange":    deadLetterExchange,
		"x-dead-letter-routing-key": deadLetterQueue,
	}
	if _, err := ch.QueueDeclare(s.cfg.ConsumeQueue, true, false, false, false, consumeArgs); err != nil {
		return errors.NewBrokerConnectError(err)
	}
	if s.cfg.Exchange != "" {
		if err := ch.QueueBind(s.cfg.ConsumeQueue, s.cfg.RoutingKey, s.cfg.Exchange, false, nil); err != nil {
			return errors.NewBrokerConnectError(err)
		}
	}
	if _, err := ch.QueueDeclare(s.cfg.PublishQueue, true, false, false, false, nil); err != nil {
		return errors.NewBrokerConnectError(err)
	}
	return nil
}

func (s *ConsumerSupervisor) openConsumerChannels() error {
	s.chans = make([]*amqp.Channel, 0, s.cfg.NumChannels)
	for i := uint8(0); i < s.cfg.NumChannels; i++ {
		ch, err := s.conn.Channel()
		if err != nil {
			return errors.NewBrokerConnectError(err)
		}
		s.chans = append(s.chans, ch)
	}
	return nil
}

func (s *ConsumerSupervisor) registerConsumers() error {
	for _, ch := range s.chans {
		deliveries, err := ch.Consume(s.cfg.ConsumeQueue, consumerTag, false, false, false, false, nil)
		if err != nil {
			return errors.NewBrokerConnectError(err)
		}
		go s.consumeLoop(deliveries)
	}
	return nil
}

func (s *ConsumerSupervisor) consumeLoop(deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		s.handler(Delivery{Body: d.Body, raw: d})
	}
}
