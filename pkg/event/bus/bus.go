/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bus is an in-process, single-node publish/subscribe event bus: OID4VP
// transaction lifecycle events ("QR code scanned", "presentation verified", ...) are
// delivered over buffered Go channels to whatever subscribes to their topic, with no
// persistence or cross-node fan-out. A persistent broker (Kafka, RabbitMQ) would replace
// this if events ever needed to survive a restart or reach another process.
package bus

import (
	"context"
	"errors"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/oidc4vp/internal/logfields"
	"github.com/trustbloc/oidc4vp/pkg/event/spi"
)

const defaultBufferSize = 250

var logger = log.New("event-bus")

// ErrNotStarted is returned by Publish/Subscribe once the Bus has been closed.
var ErrNotStarted = errors.New("event bus not started")

type entry struct {
	topic    string
	messages []*spi.Event
}

// Bus is a Go-channel-backed publisher/subscriber, safe for concurrent use.
type Bus struct {
	mutex       sync.RWMutex
	subscribers map[string][]chan *spi.Event
	publishChan chan *entry
	doneChan    chan struct{}
	started     bool
}

// New returns a running in-memory event bus.
func New() *Bus {
	b := &Bus{
		subscribers: make(map[string][]chan *spi.Event),
		publishChan: make(chan *entry, defaultBufferSize),
		doneChan:    make(chan struct{}),
		started:     true,
	}

	go b.processMessages()

	return b
}

// Close stops delivering messages and closes every subscriber channel.
func (b *Bus) Close() error {
	b.mutex.Lock()
	if !b.started {
		b.mutex.Unlock()
		return nil
	}
	b.started = false
	b.mutex.Unlock()

	b.doneChan <- struct{}{}
	<-b.doneChan

	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, subs := range b.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}

	b.subscribers = nil

	return nil
}

// Subscribe returns a channel that receives every message later published to topic.
// The channel is closed when Close is called.
func (b *Bus) Subscribe(_ context.Context, topic string) (<-chan *spi.Event, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if !b.started {
		return nil, ErrNotStarted
	}

	logger.Debug("subscribing to topic", logfields.WithTopic(topic))

	ch := make(chan *spi.Event, defaultBufferSize)
	b.subscribers[topic] = append(b.subscribers[topic], ch)

	return ch, nil
}

// Publish hands messages off to topic's subscribers and returns without waiting for
// delivery, only blocking if the internal buffer is full.
func (b *Bus) Publish(_ context.Context, topic string, messages ...*spi.Event) error {
	b.mutex.RLock()
	started := b.started
	b.mutex.RUnlock()

	if !started {
		return ErrNotStarted
	}

	b.publishChan <- &entry{topic: topic, messages: messages}

	return nil
}

func (b *Bus) processMessages() {
	for {
		select {
		case e := <-b.publishChan:
			b.publish(e)
		case <-b.doneChan:
			b.doneChan <- struct{}{}
			return
		}
	}
}

func (b *Bus) publish(e *entry) {
	b.mutex.RLock()
	subs := b.subscribers[e.topic]
	b.mutex.RUnlock()

	if len(subs) == 0 {
		logger.Debug("no subscribers for topic", logfields.WithTopic(e.topic))
		return
	}

	for _, sub := range subs {
		for _, m := range e.messages {
			msg := m.Copy()
			logger.Debug("publishing message", logfields.WithEvent(msg))
			sub <- msg
		}
	}
}
